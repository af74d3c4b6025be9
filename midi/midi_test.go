package midi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// builds and reparses an SMF so that tempo-based time conversion goes
// through the same path real files do
func roundTrip(t *testing.T, sm *smf.SMF) *smf.SMF {
	var buf bytes.Buffer
	if _, err := sm.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestSongFromSMF(t *testing.T) {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(960)

	var tempo smf.Track
	tempo.Add(0, smf.MetaTempo(120))
	tempo.Close(0)
	if err := sm.Add(tempo); err != nil {
		t.Fatal(err)
	}

	var track smf.Track
	track.Add(0, gomidi.NoteOn(0, 60, 100))
	track.Add(960, gomidi.NoteOff(0, 60))
	track.Add(0, gomidi.NoteOn(0, 64, 100))
	track.Add(1920, gomidi.NoteOff(0, 64))
	track.Close(0)
	if err := sm.Add(track); err != nil {
		t.Fatal(err)
	}

	song := SongFromSMF(roundTrip(t, sm))

	assert := assert.New(t)
	// the tempo-only track carries no notes and is dropped
	assert.Equal(1, len(song.Tracks))
	assert.Equal(0, song.Tracks[0].Channel)

	notes := song.Tracks[0].Notes
	assert.Equal(4, len(notes))

	// 960 ticks at 120bpm is half a second
	assert.Equal(60, notes[0].Pitch)
	assert.Equal(100, notes[0].Velocity)
	assert.InDelta(0.0, notes[0].Time, 0.001)
	assert.Equal(0, notes[1].Velocity)
	assert.InDelta(0.5, notes[1].Time, 0.001)
	assert.InDelta(0.5, notes[2].Time, 0.001)
	assert.InDelta(1.5, notes[3].Time, 0.001)

	assert.InDelta(1.5, song.Duration, 0.001)
}

func TestSongFromSMFTracksChannel(t *testing.T) {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(960)

	var drums smf.Track
	drums.Add(0, gomidi.NoteOn(9, 35, 100))
	drums.Add(120, gomidi.NoteOff(9, 35))
	drums.Close(0)
	if err := sm.Add(drums); err != nil {
		t.Fatal(err)
	}

	song := SongFromSMF(roundTrip(t, sm))

	assert := assert.New(t)
	assert.Equal(1, len(song.Tracks))
	assert.Equal(9, song.Tracks[0].Channel)
}

func TestReadMidiFileMissingFile(t *testing.T) {
	_, err := ReadMidiFile("does-not-exist.mid")
	assert.Error(t, err)
}
