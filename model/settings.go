package model

import "github.com/RyantheKing/owmidiconverter/constants"

type Settings struct {
	StartTime float64 `json:"startTime"`
	Voices    int     `json:"voices"`
}

func DefaultSettings() Settings {
	return Settings{StartTime: 0, Voices: constants.DefaultVoices}
}

// ValidateSettings checks each field against its documented bounds and
// swaps an invalid field for its default, keeping the valid ones. Unknown
// fields never reach here because settings decode into a typed struct.
func ValidateSettings(s Settings) Settings {
	res := DefaultSettings()
	if s.StartTime >= 0 {
		res.StartTime = s.StartTime
	}
	if s.Voices >= constants.MinVoices && s.Voices <= constants.MaxVoices {
		res.Voices = s.Voices
	}
	return res
}
