package logs

import "context"

// Stage names the pipeline stage a log record belongs to, e.g. "tokenize" or
// "render".
type Stage string

type stageKeyType struct{}

var StageKey stageKeyType

// WithStage returns a context whose log records carry the given stage name.
func WithStage(ctx context.Context, stage Stage) context.Context {
	return context.WithValue(ctx, StageKey, stage)
}
