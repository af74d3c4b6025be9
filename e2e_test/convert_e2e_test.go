//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RyantheKing/owmidiconverter/cmd"
	"github.com/RyantheKing/owmidiconverter/model"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func makeTestMidi(t *testing.T) []byte {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(960)

	var tempo smf.Track
	tempo.Add(0, smf.MetaTempo(120))
	tempo.Close(0)
	if err := sm.Add(tempo); err != nil {
		t.Fatal(err)
	}

	var track smf.Track
	track.Add(0, midi.NoteOn(0, 60, 100))
	track.Add(0, midi.NoteOn(0, 64, 100))
	track.Add(960, midi.NoteOff(0, 60))
	track.Add(0, midi.NoteOff(0, 64))
	track.Add(0, midi.NoteOn(0, 67, 100))
	track.Add(960, midi.NoteOff(0, 67))
	track.Close(0)
	if err := sm.Add(track); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if _, err := sm.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestConvertEndToEnd(t *testing.T) {
	body := bytes.NewReader(makeTestMidi(t))
	req := httptest.NewRequest(http.MethodPost, "/convert?voices=7", body)
	w := httptest.NewRecorder()
	cmd.HandleConvert(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var convertResponse model.ConvertResponse
	err := json.Unmarshal(respBody, &convertResponse)
	if err != nil {
		t.Fatal(err.Error())
	}

	assert.Empty(convertResponse.Errors)
	assert.Contains(convertResponse.Rules, "Global.owVoices = 7;")
	assert.Contains(convertResponse.Rules, "Global.owTimes[0] = Array(0, 0.5);")
	assert.Contains(convertResponse.Rules, "Global.owChords[0] = Array(2, 1);")
	assert.Contains(convertResponse.Rules, "Global.owPitches[0] = Array(36, 40, 43);")
	assert.Equal(7, convertResponse.TotalElements)
}

func TestConvertEndToEndStartTimeSkipsEverything(t *testing.T) {
	body := bytes.NewReader(makeTestMidi(t))
	req := httptest.NewRequest(http.MethodPost, "/convert?startTime=100", body)
	w := httptest.NewRecorder()
	cmd.HandleConvert(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var convertResponse model.ConvertResponse
	if err := json.Unmarshal(respBody, &convertResponse); err != nil {
		t.Fatal(err.Error())
	}
	assert.NotEmpty(convertResponse.Errors)
	assert.Equal("", convertResponse.Rules)
}

func TestConvertEndToEndRejectsEmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(""))
	w := httptest.NewRecorder()
	cmd.HandleConvert(w, req)

	assert.Equal(t, 400, w.Result().StatusCode)
}
