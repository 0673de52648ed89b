package tabscore

import (
	"context"

	"github.com/reusee/tabi/logs"
	"github.com/reusee/tabi/tabconfigs"
	"github.com/reusee/tabi/tablang"
)

// Interpret runs a tablature source through the full pipeline and returns
// the rendered staffs.
type Interpret func(ctx context.Context, source string) (string, error)

func (Module) Interpret(
	logger logs.Logger,
	defaultTime tabconfigs.DefaultTime,
	defaultFidelity tabconfigs.DefaultFidelity,
) Interpret {
	return func(ctx context.Context, source string) (string, error) {

		ctx = logs.WithStage(ctx, "tokenize")
		logger.DebugContext(ctx, "tokenizing",
			"bytes", len(source),
		)
		tokens, err := tablang.NewTokenizer(source).Tokens()
		if err != nil {
			return "", err
		}

		ctx = logs.WithStage(ctx, "render")
		logger.DebugContext(ctx, "rendering",
			"tokens", len(tokens),
		)
		renderer := NewRenderer(tokens)
		renderer.SetDefaultTime(
			defaultTime.BeatsPerMeasure,
			defaultTime.DominantBeat,
			int(defaultFidelity),
		)
		return renderer.Tabs()
	}
}
