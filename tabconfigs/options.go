package tabconfigs

import (
	"strconv"
	"strings"

	"github.com/reusee/tabi/cmds"
	"github.com/reusee/tabi/configs"
	"github.com/reusee/tabi/vars"
)

// DefaultTime is the time signature a staff starts with when the source does
// not set one.
type DefaultTime struct {
	BeatsPerMeasure int
	DominantBeat    int
}

// DefaultFidelity is the beat fidelity a staff starts with when the source
// does not set one.
type DefaultFidelity int

// OutputExtension is the extension forced onto the output file name.
type OutputExtension string

var (
	timeFlag     = cmds.Var[string]("-time-signature")
	fidelityFlag = cmds.Var[int]("-fidelity")
)

type timeConfig struct {
	BeatsPerMeasure *int `json:"beats_per_measure"`
	DominantBeat    *int `json:"dominant_beat"`
}

func (Module) DefaultTime(
	loader configs.Loader,
) DefaultTime {
	// flag wins over config wins over the built-in common time
	if beats, dominant, ok := parseSignature(*timeFlag); ok {
		return DefaultTime{
			BeatsPerMeasure: beats,
			DominantBeat:    dominant,
		}
	}

	cfg := configs.First[timeConfig](loader, "time")
	return DefaultTime{
		BeatsPerMeasure: vars.FirstNonZero(vars.DerefOrZero(cfg.BeatsPerMeasure), 4),
		DominantBeat:    vars.FirstNonZero(vars.DerefOrZero(cfg.DominantBeat), 4),
	}
}

func (Module) DefaultFidelity(
	loader configs.Loader,
) DefaultFidelity {
	return DefaultFidelity(vars.FirstNonZero(
		*fidelityFlag,
		configs.First[int](loader, "fidelity"),
		16,
	))
}

func (Module) OutputExtension(
	loader configs.Loader,
) OutputExtension {
	return OutputExtension(vars.FirstNonZero(
		configs.First[string](loader, "output_extension"),
		".txt",
	))
}

// parseSignature reads a "n/n" flag value. Malformed values are ignored so a
// bad flag cannot mask the config file.
func parseSignature(value string) (beats, dominant int, ok bool) {
	numerator, denominator, found := strings.Cut(value, "/")
	if !found {
		return 0, 0, false
	}
	beats, errBeats := strconv.Atoi(strings.TrimSpace(numerator))
	dominant, errDominant := strconv.Atoi(strings.TrimSpace(denominator))
	if errBeats != nil || errDominant != nil {
		return 0, 0, false
	}
	return beats, dominant, true
}
