package tabscore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StaffOptions holds the global defaults copied into each newly created
// staff, and parses options blocks into them.
type StaffOptions struct {
	time Time
}

func NewStaffOptions() StaffOptions {
	return StaffOptions{
		time: NewTime(),
	}
}

// Set parses an options literal of the form "name=value; name=value". Every
// malformed segment is reported; parsing does not stop at the first bad one,
// so one options block reports every problem it contains.
func (o *StaffOptions) Set(options string) error {
	var errs strings.Builder
	for _, option := range strings.Split(options, ";") {
		if err := o.parseOption(option); err != nil {
			errs.WriteString(err.Error())
		}
	}
	if errs.Len() == 0 {
		return nil
	}
	return errors.New(errs.String())
}

func (o *StaffOptions) TimeSignature() (beatsPerMeasure, dominantBeat int) {
	return o.time.Signature()
}

func (o *StaffOptions) TimeFidelity() int {
	return o.time.Fidelity()
}

func (o *StaffOptions) parseOption(option string) error {
	parts := strings.Split(strings.TrimSpace(option), "=")
	if len(parts) < 2 {
		return fmt.Errorf("\tOption %q has not been set to a value.\n", parts)
	}

	name := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	switch name {
	case "time":
		return o.parseTimeSignature(value)
	case "fidelity":
		return o.parseFidelity(value)
	}
	return fmt.Errorf("\tOption %q does not exist.\n", name)
}

func (o *StaffOptions) parseTimeSignature(timeSignature string) error {
	parts := strings.Split(strings.TrimSpace(timeSignature), "/")
	if len(parts) < 2 {
		return fmt.Errorf("\tTime signature option %q is improperly formatted. Format should equal \"n/n\" where 'n' is a whole integer.\n", timeSignature)
	}

	beats, errBeats := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	dominant, errDominant := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	switch {
	case errBeats == nil && errDominant == nil:
		o.time.SetSignature(int(beats), int(dominant))
		return nil
	case errBeats != nil && errDominant != nil:
		return fmt.Errorf("\tCould not parse time signature (%q, %q) into numbers: (%v, %v)\n", parts[0], parts[1], errBeats, errDominant)
	case errBeats != nil:
		return fmt.Errorf("\tCould not parse beats per measure (numerator) %q into a number: %v\n", parts[0], errBeats)
	}
	return fmt.Errorf("\tCould not parse dominant beat (denominator) %q into a number: %v\n", parts[1], errDominant)
}

func (o *StaffOptions) parseFidelity(fidelity string) error {
	f, err := strconv.ParseUint(strings.TrimSpace(fidelity), 10, 32)
	if err != nil {
		return fmt.Errorf("\tCould not parse beat fidelity %q into a number: %v\n", fidelity, err)
	}
	o.time.SetFidelity(int(f))
	return nil
}
