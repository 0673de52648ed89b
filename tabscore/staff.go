package tabscore

import (
	"errors"
	"strings"
)

var (
	ErrSignatureAfterTabs = errors.New("[IE_pr-st-fn(SIG)]: cannot set time signature after tabs have been added.\n")
	ErrFidelityAfterTabs  = errors.New("[IE_pr-st-fn(FID)]: cannot set fidelity after tabs have been added.\n")
	ErrNoteAfterTabs      = errors.New("[IE_pr-st-fn(ADN)]: cannot add note after tabs have been added.\n")
)

// Staff is one group of guitar strings sharing a tuning and beat state: one
// text buffer per string plus the beat-count line rendered by its Time.
// Strings are declared top name first and written bottom-up, so the cursor
// starts at the newest string and decrements toward the first.
type Staff struct {
	notes     []string
	tabs      []string
	time      Time
	hasTabs   bool
	stringPos int
}

func NewStaff() *Staff {
	return &Staff{
		time: NewTime(),
	}
}

// SetTimeSignature fails once any tab cell has been written; changing the
// signature then would corrupt the columns already rendered.
func (s *Staff) SetTimeSignature(beatsPerMeasure, dominantBeat int) error {
	if s.hasTabs {
		return ErrSignatureAfterTabs
	}
	s.time.SetSignature(beatsPerMeasure, dominantBeat)
	return nil
}

// SetTimeFidelity fails once any tab cell has been written, for the same
// reason as SetTimeSignature.
func (s *Staff) SetTimeFidelity(fidelity int) error {
	if s.hasTabs {
		return ErrFidelityAfterTabs
	}
	s.time.SetFidelity(fidelity)
	return nil
}

// AddNote declares the next string.
func (s *Staff) AddNote(note string) error {
	if s.hasTabs {
		return ErrNoteAfterTabs
	}
	s.notes = append(s.notes, note)
	s.tabs = append(s.tabs, "")
	s.stringPos = len(s.notes) - 1
	return nil
}

// AddTab writes a three column fret cell on the current string and moves the
// cursor to the next string up. Single character frets pad with a trailing
// dash; two character frets fill the cell.
func (s *Staff) AddTab(tab string) {
	s.checkBeat()

	if len(s.tabs) == 0 {
		return
	}
	cell := "-" + tab
	if len(tab) == 1 {
		cell += "-"
	}
	s.tabs[s.stringPos] += cell
	s.hasTabs = true
	s.updateStringPos()
}

// AddEmpty writes an empty cell on the current string and moves the cursor to
// the next string up.
func (s *Staff) AddEmpty() {
	s.checkBeat()

	if len(s.tabs) == 0 {
		return
	}
	s.tabs[s.stringPos] += "---"
	s.hasTabs = true
	s.updateStringPos()
}

// AddNext rests every string from the cursor down to the first, finishing the
// current beat. Each string touched ticks the cursor on its own, and the beat
// when the cursor wraps; bar line placement depends on this exact coupling.
func (s *Staff) AddNext() {
	for pos := s.stringPos; pos >= 0; pos-- {
		s.checkBeat()
		if pos < len(s.tabs) {
			s.tabs[pos] += "---"
			s.hasTabs = true
		}
		s.updateStringPos()
	}
}

// AddSpreadEmpty repeats AddEmpty amt times.
func (s *Staff) AddSpreadEmpty(amt int) {
	for range amt {
		s.AddEmpty()
	}
}

// AddSpreadNext repeats AddNext amt times.
func (s *Staff) AddSpreadNext(amt int) {
	for range amt {
		s.AddNext()
	}
}

// updateStringPos decrements the cursor; on reaching the first string it
// wraps back to the last one and counts a full beat.
func (s *Staff) updateStringPos() {
	if s.stringPos == 0 {
		s.time.IncrementBeat()
		s.stringPos = len(s.notes) - 1
	} else {
		s.stringPos--
	}
}

// checkBeat writes a bar line on the current string when the current beat
// opens a measure. It runs before the cell, so the bar line lands on the left
// edge of the measure.
func (s *Staff) checkBeat() {
	if s.time.Beat() != "1" {
		return
	}
	if s.stringPos < len(s.tabs) {
		s.tabs[s.stringPos] += "|"
	}
}

// String renders the staff: the first declared string prints on top, so the
// note list is walked in reverse against the tab buffers. One character note
// names pad to two. The beat-count line follows after a blank line.
func (s *Staff) String() string {
	var sb strings.Builder
	for i, tab := range s.tabs {
		note := s.notes[len(s.notes)-1-i]
		if len(note) == 1 {
			note += " "
		}
		sb.WriteString(note)
		sb.WriteString(" ")
		sb.WriteString(tab)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(s.time.String())
	sb.WriteString("\n")
	return sb.String()
}
