package convert

import (
	"github.com/RyantheKing/owmidiconverter/chord"
	"github.com/RyantheKing/owmidiconverter/midi"
	"github.com/RyantheKing/owmidiconverter/model"
	"github.com/RyantheKing/owmidiconverter/pack"
	"github.com/RyantheKing/owmidiconverter/workshop"
)

// Song runs the aggregate, pack and emit stages over an in-memory song.
// The only condition that suppresses the later stages is aggregation
// finding no notes at all; everything else accumulates into counters and
// the warning list.
func Song(song model.Song, settings model.Settings) model.Result {
	settings = model.ValidateSettings(settings)

	agg := chord.Aggregate(song, settings)
	res := model.Result{
		TransposedNotes: agg.TransposedNotes,
		SkippedNotes:    agg.SkippedNotes,
		Duration:        song.Duration,
		Warnings:        agg.Warnings,
		Errors:          agg.Errors,
	}
	if len(agg.Errors) > 0 {
		return res
	}

	arrays := pack.Pack(agg.Chords)
	res.TotalElements = arrays.TotalElements
	res.StopTime = arrays.StopTime
	res.Rules = workshop.Emit(arrays, settings.Voices)
	return res
}

// File parses a midi file and converts it.
func File(path string, settings model.Settings) (model.Result, error) {
	song, err := midi.ReadSong(path)
	if err != nil {
		return model.Result{}, err
	}
	return Song(song, settings), nil
}
