package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tabi/tablang"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "tokens", map[string]any{
			"tokens": []tablang.Token{
				{Kind: tablang.TokenNote, Text: "E", Line: 1},
			},
		})
	})
}
