package model

type Note struct {
	Time     float64
	Pitch    int
	Velocity int
	Channel  int
}

type Track struct {
	Channel int
	Notes   []Note
}

type Song struct {
	Duration float64
	Tracks   []Track
}

type FileNumToMidiPath = map[uint32]string
