package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/RyantheKing/owmidiconverter/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// the smf reader panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file... %s", err.Error())
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file... %s", err.Error())
	}

	return res, nil
}

// ReadSong flattens a midi file into tracks of note events with absolute
// times in seconds.
func ReadSong(path string) (model.Song, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return model.Song{}, err
	}
	return SongFromSMF(s), nil
}

// SongFromSMF walks every track accumulating delta ticks and converts note
// events to seconds via the file's tempo map. NoteOff messages become
// velocity-0 notes so downstream stages see one uniform event stream.
// Tracks without any note events (tempo/meta tracks) are not kept.
func SongFromSMF(s *smf.SMF) model.Song {
	var song model.Song
	for _, events := range s.Tracks {
		track := model.Track{Channel: -1}
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				// velocity 0 note-ons are note-offs in disguise; keep them
				// and let the aggregator drop them
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				velocity = 0
			default:
				continue
			}
			if track.Channel == -1 {
				track.Channel = int(channel)
			}
			secs := float64(s.TimeAt(absTicks)) / 1e6
			track.Notes = append(track.Notes, model.Note{
				Time:     secs,
				Pitch:    int(key),
				Velocity: int(velocity),
				Channel:  int(channel),
			})
			if secs > song.Duration {
				song.Duration = secs
			}
		}
		if len(track.Notes) > 0 {
			song.Tracks = append(song.Tracks, track)
		}
	}
	return song
}
