package constants

import "os"

// Playable range of the in-game piano, as MIDI note numbers.
const MinPitch = 24
const MaxPitch = 88

const MinVoices = 6
const MaxVoices = 11
const DefaultVoices = 6

// The Workshop caps arrays at 999 elements. Chunks keep one slot free for
// the literal's leading element.
const MaxArraySize = 999
const ChunkSize = MaxArraySize - 1

// Cap on total flat-array entries across the times, chords and pitches
// sequences. Each chord costs 2 + number of pitches.
const ElementBudget = 9000

// Decimal places for onset times. Everything that compares, stores or
// renders a time rounds to this precision first.
const TimePrecision = 3

// Channel 9 (0-based) is percussion in General MIDI.
const PercussionChannel = 9

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "."
}
