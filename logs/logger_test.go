package logs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestStage(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := WithStage(context.Background(), "tokenize")
		logger.InfoContext(ctx, "scanning")

		ctx = WithStage(ctx, "render")
		logger.InfoContext(ctx, "rendering")

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.stage=tokenize") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.stage=render") {
			t.Fatalf("got %v", lines[1])
		}
	})
}
