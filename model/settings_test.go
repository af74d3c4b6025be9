package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSettingsKeepsValidFields(t *testing.T) {
	s := ValidateSettings(Settings{StartTime: 12.5, Voices: 11})
	assert.Equal(t, Settings{StartTime: 12.5, Voices: 11}, s)
}

func TestValidateSettingsDefaultsInvalidFieldsIndependently(t *testing.T) {
	cases := []struct {
		name     string
		in       Settings
		expected Settings
	}{
		{"negative start time", Settings{StartTime: -1, Voices: 8}, Settings{StartTime: 0, Voices: 8}},
		{"voices too low", Settings{StartTime: 3, Voices: 5}, Settings{StartTime: 3, Voices: 6}},
		{"voices too high", Settings{StartTime: 3, Voices: 12}, Settings{StartTime: 3, Voices: 6}},
		{"zero value", Settings{}, Settings{StartTime: 0, Voices: 6}},
		{"both invalid", Settings{StartTime: -0.5, Voices: 99}, Settings{StartTime: 0, Voices: 6}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, ValidateSettings(c.in))
		})
	}
}

func TestSettingsDecodingIgnoresUnknownFields(t *testing.T) {
	var s Settings
	err := json.Unmarshal([]byte(`{"startTime": 1.5, "voices": 7, "tempo": 999}`), &s)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(Settings{StartTime: 1.5, Voices: 7}, ValidateSettings(s))
}
