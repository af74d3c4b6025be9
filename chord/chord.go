package chord

import (
	"sort"

	"github.com/RyantheKing/owmidiconverter/constants"
	"github.com/RyantheKing/owmidiconverter/model"
	"github.com/RyantheKing/owmidiconverter/util"
)

const octave = 12

// NormalizePitch shifts a pitch an octave at a time until it lands inside
// the playable range. The second return reports whether it moved.
func NormalizePitch(pitch int) (int, bool) {
	res := pitch
	for res < constants.MinPitch {
		res += octave
	}
	for res > constants.MaxPitch {
		res -= octave
	}
	return res, res != pitch
}

type AggregateResult struct {
	Chords          []model.TimedChord
	TransposedNotes int
	SkippedNotes    int
	Warnings        []string
	Errors          []string
}

const NoNotesError = "no notes found in file"
const SingleTrackWarning = "file only contains a single track, it may have been misread"

// Aggregate buckets note-on events into chords keyed by quantized onset
// time. Percussion tracks, note-offs and events before the start time are
// dropped. Within a chord pitches are first-come-first-served up to the
// voice limit; overflow is counted, never replaces an earlier pitch.
func Aggregate(song model.Song, settings model.Settings) AggregateResult {
	var res AggregateResult

	timeToPitches := make(map[float64][]int)
	for _, track := range song.Tracks {
		if track.Channel == constants.PercussionChannel {
			continue
		}
		for _, note := range track.Notes {
			if note.Velocity == 0 {
				continue
			}
			if note.Time < settings.StartTime {
				continue
			}

			normalized, transposed := NormalizePitch(note.Pitch)
			if transposed {
				res.TransposedNotes++
			}
			pitch := normalized - constants.MinPitch
			t := util.RoundTime(note.Time)

			pitches := timeToPitches[t]
			if containsPitch(pitches, pitch) {
				continue
			}
			if len(pitches) >= settings.Voices {
				res.SkippedNotes++
				continue
			}
			timeToPitches[t] = append(pitches, pitch)
		}
	}

	if len(song.Tracks) == 1 {
		res.Warnings = append(res.Warnings, SingleTrackWarning)
	}
	if len(timeToPitches) == 0 {
		res.Errors = append(res.Errors, NoNotesError)
		return res
	}

	// map order is arbitrary, so build then sort once by time
	for _, t := range util.GetKeys(timeToPitches) {
		res.Chords = append(res.Chords, model.TimedChord{Time: t, Pitches: timeToPitches[t]})
	}
	sort.Slice(res.Chords, func(i, j int) bool {
		return res.Chords[i].Time < res.Chords[j].Time
	})
	return res
}

func containsPitch(pitches []int, pitch int) bool {
	for _, p := range pitches {
		if p == pitch {
			return true
		}
	}
	return false
}
