package tabscore

import (
	"strconv"
	"strings"
)

// Time tracks the time signature, beat fidelity and running beat counter for
// one staff. It decides where bar lines fall and how each counted beat is
// labeled on the beat-count line.
type Time struct {
	beatsPerMeasure   int
	dominantBeat      int
	fidelity          int
	currentBeat       int
	totalBeatsCounted int
}

// NewTime returns a Time in common time (4/4) with sixteenth note fidelity.
func NewTime() Time {
	return Time{
		beatsPerMeasure: 4,
		dominantBeat:    4,
		fidelity:        16,
	}
}

// SetSignature sets the time signature. Non-positive values are replaced
// with 1.
func (t *Time) SetSignature(beatsPerMeasure, dominantBeat int) {
	t.beatsPerMeasure = max(beatsPerMeasure, 1)
	t.dominantBeat = max(dominantBeat, 1)
}

func (t *Time) Signature() (beatsPerMeasure, dominantBeat int) {
	return t.beatsPerMeasure, t.dominantBeat
}

// SetFidelity sets the smallest time subdivision tracked per measure.
// Non-positive values are replaced with 1.
func (t *Time) SetFidelity(fidelity int) {
	t.fidelity = max(fidelity, 1)
}

func (t *Time) Fidelity() int {
	return t.fidelity
}

// Beat returns the label of the current beat: the beat number, "e", "&", "a"
// or ".".
func (t *Time) Beat() string {
	return t.beatAt(t.currentBeat)
}

// IncrementBeat advances to the next beat, wrapping at the measure boundary.
func (t *Time) IncrementBeat() {
	t.currentBeat = (t.currentBeat + 1) % t.totalBeatsPerMeasure()
	t.totalBeatsCounted++
}

// totalBeatsPerMeasure is the number of beats and fractional beats a measure
// holds at the current fidelity.
func (t *Time) totalBeatsPerMeasure() int {
	return t.beatsPerMeasure * (t.fidelity / t.dominantBeat)
}

// beatAt labels the beat at pos within a measure. Downbeats get the beat
// number; quarter subdivisions get the spoken "e", "&", "a" names. The named
// subdivisions only come out when fidelity/dominantBeat is a power of two no
// less than 4; other ratios degrade to ".".
func (t *Time) beatAt(pos int) string {
	beatResolution := float64(t.fidelity) / float64(t.dominantBeat)
	beatDiv := pos % int(beatResolution)
	beat := pos / int(beatResolution)

	switch {
	case beatDiv == 0:
		return strconv.Itoa(beat + 1)
	case float64(beatDiv)/beatResolution == 0.25:
		return "e"
	case float64(beatDiv)/beatResolution == 0.5:
		return "&"
	case float64(beatDiv)/beatResolution == 0.75:
		return "a"
	}
	return "."
}

// String renders the beat-count line under a staff. Tab lines open with a two
// character note name and a space, so the count line leads with the same
// width. Each measure start gets one extra space to stay aligned with the bar
// line character on the tab lines above.
func (t *Time) String() string {
	var beats strings.Builder
	beats.WriteString("   ")
	for b := range t.totalBeatsCounted {
		beat := t.beatAt(b % t.totalBeatsPerMeasure())
		if beat == "1" {
			beats.WriteString(" ")
		}
		beats.WriteString(" ")
		beats.WriteString(beat)
		if len(beat) == 1 {
			beats.WriteString(" ")
		}
	}
	return beats.String()
}
