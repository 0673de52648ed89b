package tablang

import (
	"fmt"
	"slices"
	"strings"
)

// Watcher collects line-tagged diagnostics during a scan or render pass.
// Passes keep going after logging so that a single run reports every problem
// it finds.
type Watcher struct {
	log      []string
	HadError bool
}

func (w *Watcher) Error(line int, message string) {
	w.log = append(w.log, fmt.Sprintf("[%d] Error: %s", line, message))
	w.HadError = true
}

func (w *Watcher) String() string {
	return strings.Join(w.log, "\n")
}

// Err returns the collected diagnostics as an error, or nil when the pass was
// clean.
func (w *Watcher) Err() error {
	if !w.HadError {
		return nil
	}
	return &Diagnostics{
		Entries: slices.Clone(w.log),
	}
}

// Diagnostics is the failure result of a pass: every collected message, in
// the order logged. A stage returning a *Diagnostics produced no trustworthy
// output.
type Diagnostics struct {
	Entries []string
}

var _ error = new(Diagnostics)

func (d *Diagnostics) Error() string {
	return strings.Join(d.Entries, "\n")
}
