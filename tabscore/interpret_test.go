package tabscore

import (
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tabi/modes"
)

func TestInterpret(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		interpret Interpret,
	) {
		tabs, err := interpret(t.Context(), "E A D G B E 0 3 5 ,")
		if err != nil {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(tabs, "E  |-0-\n") {
			t.Fatalf("got %q", tabs)
		}
		if !strings.Contains(tabs, "     1 \n") {
			t.Fatalf("got %q", tabs)
		}

		_, err = interpret(t.Context(), "E x")
		if err == nil {
			t.Fatal("expecting error")
		}
		if !strings.Contains(err.Error(), "Unknown character value: x") {
			t.Fatalf("got %v", err)
		}
	})
}
