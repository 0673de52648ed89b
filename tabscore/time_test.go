package tabscore

import "testing"

func TestTimeBeatLabels(t *testing.T) {
	time := NewTime()
	// 4/4 at sixteenth fidelity counts "1 e & a 2 e & a ..."
	expected := []string{
		"1", "e", "&", "a",
		"2", "e", "&", "a",
		"3", "e", "&", "a",
		"4", "e", "&", "a",
		"1",
	}
	for i, want := range expected {
		if got := time.Beat(); got != want {
			t.Fatalf("beat %d: got %q, want %q", i, got, want)
		}
		time.IncrementBeat()
	}
}

func TestTimeBeatLabelFallback(t *testing.T) {
	var time Time
	time.SetSignature(4, 4)
	// twelfth fidelity splits a beat in thirds, which have no spoken names
	time.SetFidelity(12)
	expected := []string{"1", ".", ".", "2", ".", ".", "3"}
	for i, want := range expected {
		if got := time.Beat(); got != want {
			t.Fatalf("beat %d: got %q, want %q", i, got, want)
		}
		time.IncrementBeat()
	}
}

func TestTimeClamping(t *testing.T) {
	var time Time
	time.SetSignature(0, -3)
	beats, dominant := time.Signature()
	if beats != 1 || dominant != 1 {
		t.Fatalf("got %d/%d", beats, dominant)
	}
	time.SetFidelity(0)
	if f := time.Fidelity(); f != 1 {
		t.Fatalf("got %d", f)
	}
}

func TestTimeMeasureWrap(t *testing.T) {
	var time Time
	time.SetSignature(2, 4)
	time.SetFidelity(4)
	expected := []string{"1", "2", "1", "2", "1"}
	for i, want := range expected {
		if got := time.Beat(); got != want {
			t.Fatalf("beat %d: got %q, want %q", i, got, want)
		}
		time.IncrementBeat()
	}
}

func TestTimeString(t *testing.T) {
	var time Time
	time.SetSignature(4, 4)
	time.SetFidelity(4)
	for range 5 {
		time.IncrementBeat()
	}
	if got, want := time.String(), "     1  2  3  4   1 "; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTimeStringTwoDigitBeats(t *testing.T) {
	var time Time
	time.SetSignature(12, 4)
	time.SetFidelity(4)
	for range 12 {
		time.IncrementBeat()
	}
	if got, want := time.String(), "     1  2  3  4  5  6  7  8  9  10 11 12"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
