package tabscore

import (
	"github.com/reusee/tabi/tablang"
)

// Renderer drives a StaffManager over a token sequence once and serializes
// the resulting staffs. Option errors are collected at the offending token's
// line and the pass continues; any collected error fails the pass as a whole.
type Renderer struct {
	source  []tablang.Token
	tabs    string
	watcher tablang.Watcher

	defaultBeatsPerMeasure int
	defaultDominantBeat    int
	defaultFidelity        int
}

func NewRenderer(source []tablang.Token) *Renderer {
	return &Renderer{
		source: source,
	}
}

// SetDefaultTime seeds the global staff options before the render pass, as if
// the source opened with a [time=...; fidelity=...] block. Zero values leave
// the built-in defaults in place. It has no effect once Tabs has run.
func (r *Renderer) SetDefaultTime(beatsPerMeasure, dominantBeat, fidelity int) {
	r.defaultBeatsPerMeasure = beatsPerMeasure
	r.defaultDominantBeat = dominantBeat
	r.defaultFidelity = fidelity
}

// Tabs renders the token sequence into tablature text. The text is computed
// on the first call and cached. When any option error was collected the
// returned error is a *tablang.Diagnostics holding every message, and the
// text is withheld.
func (r *Renderer) Tabs() (string, error) {
	if r.tabs == "" {
		manager := NewStaffManager()
		if r.defaultBeatsPerMeasure > 0 && r.defaultDominantBeat > 0 {
			manager.options.time.SetSignature(r.defaultBeatsPerMeasure, r.defaultDominantBeat)
		}
		if r.defaultFidelity > 0 {
			manager.options.time.SetFidelity(r.defaultFidelity)
		}

		for _, token := range r.source {
			switch token.Kind {

			case tablang.TokenNote:
				manager.AddNote(token.Text)

			case tablang.TokenNumber:
				manager.AddTab(token.Text)

			case tablang.TokenEmpty:
				manager.AddEmpty()

			case tablang.TokenNext:
				manager.AddNext()

			case tablang.TokenSpreadEmpty:
				if token.Literal.Kind == tablang.LiteralNumber {
					manager.AddSpreadEmpty(int(token.Literal.Number))
				}

			case tablang.TokenSpreadNext:
				if token.Literal.Kind == tablang.LiteralNumber {
					manager.AddSpreadNext(int(token.Literal.Number))
				}

			case tablang.TokenOptions:
				if token.Literal.Kind == tablang.LiteralOptions {
					if err := manager.SetOptions(token.Literal.Options); err != nil {
						r.watcher.Error(token.Line, "\n"+err.Error())
					}
				}

			case tablang.TokenEndOfFile:
			}
		}

		r.tabs = manager.String()
	}

	if r.watcher.HadError {
		return "", r.watcher.Err()
	}
	return r.tabs, nil
}
