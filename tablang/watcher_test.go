package tablang

import "testing"

func TestWatcher(t *testing.T) {
	var watcher Watcher

	if watcher.HadError {
		t.Fatal()
	}
	if err := watcher.Err(); err != nil {
		t.Fatalf("got %v", err)
	}

	watcher.Error(1, "An error occurred here.")
	watcher.Error(5, "This was an error.")

	if !watcher.HadError {
		t.Fatal()
	}
	expected := "[1] Error: An error occurred here.\n[5] Error: This was an error."
	if s := watcher.String(); s != expected {
		t.Fatalf("got %q", s)
	}
	if err := watcher.Err(); err.Error() != expected {
		t.Fatalf("got %q", err.Error())
	}
}

func TestWatcherErrIsolatesEntries(t *testing.T) {
	var watcher Watcher
	watcher.Error(1, "first")

	diags := watcher.Err().(*Diagnostics)
	watcher.Error(2, "second")

	if len(diags.Entries) != 1 {
		t.Fatalf("got %d entries", len(diags.Entries))
	}
}
