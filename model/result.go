package model

// TimedChord is one quantized onset and the distinct pitches sounding at it.
// Pitches are stored offset so MinPitch maps to 0.
type TimedChord struct {
	Time    float64
	Pitches []int
}

// PackedArrays holds the three parallel flat sequences the Workshop player
// reads: one onset time and one pitch count per chord, and the chords'
// pitches concatenated in time order.
type PackedArrays struct {
	Times         []float64
	Chords        []int
	Pitches       []int
	TotalElements int
	StopTime      float64
}

type Result struct {
	Rules           string   `json:"rules"`
	TransposedNotes int      `json:"transposed_notes"`
	SkippedNotes    int      `json:"skipped_notes"`
	TotalElements   int      `json:"total_elements"`
	Duration        float64  `json:"duration"`
	StopTime        float64  `json:"stop_time"`
	Warnings        []string `json:"warnings"`
	Errors          []string `json:"errors"`
}

type SongMetadata struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Release string `json:"release"`
	Year    uint   `json:"year"`
}
