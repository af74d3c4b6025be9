package pack

import (
	"sort"

	"github.com/RyantheKing/owmidiconverter/constants"
	"github.com/RyantheKing/owmidiconverter/model"
)

// Cost is how many flat-array entries a chord occupies: its onset time, its
// pitch count, and one entry per pitch.
func Cost(c model.TimedChord) int {
	return 2 + len(c.Pitches)
}

// Pack walks chords in ascending time order and flattens them into the
// three parallel sequences, stopping before the chord that would push the
// running total past the element budget. StopTime is the time of the first
// chord left out, or of the last chord packed when everything fit.
func Pack(chords []model.TimedChord) model.PackedArrays {
	var res model.PackedArrays
	for _, c := range chords {
		if res.TotalElements+Cost(c) > constants.ElementBudget {
			res.StopTime = c.Time
			return res
		}

		pitches := append([]int(nil), c.Pitches...)
		sort.Ints(pitches)

		res.Times = append(res.Times, c.Time)
		res.Chords = append(res.Chords, len(pitches))
		res.Pitches = append(res.Pitches, pitches...)
		res.TotalElements += Cost(c)
		res.StopTime = c.Time
	}
	return res
}
