package workshop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RyantheKing/owmidiconverter/constants"
	"github.com/RyantheKing/owmidiconverter/model"
	"github.com/RyantheKing/owmidiconverter/util"
)

// Global variable names the Workshop player script reads from.
const (
	TimesVar   = "owTimes"
	ChordsVar  = "owChords"
	PitchesVar = "owPitches"
	VoicesVar  = "owVoices"
	SizeVar    = "owMaxArraySize"
)

// Emit renders the packed arrays as Workshop rules: a config rule assigning
// the voice count and array ceiling, then a data rule whose actions assign
// each sequence chunk to a global array slot. Chunks of the three sequences
// are split independently; each literal holds at most ChunkSize values.
func Emit(arrays model.PackedArrays, voices int) string {
	var b strings.Builder

	openRule(&b, "owmidi: config")
	writeAction(&b, fmt.Sprintf("Global.%v = %v;", VoicesVar, voices))
	writeAction(&b, fmt.Sprintf("Global.%v = %v;", SizeVar, constants.MaxArraySize))
	closeRule(&b)

	timeChunks := util.Chunk(arrays.Times, constants.ChunkSize)
	chordChunks := util.Chunk(arrays.Chords, constants.ChunkSize)
	pitchChunks := util.Chunk(arrays.Pitches, constants.ChunkSize)
	if len(timeChunks) == 0 && len(chordChunks) == 0 && len(pitchChunks) == 0 {
		return b.String()
	}

	openRule(&b, "owmidi: song data")
	for i, chunk := range timeChunks {
		writeAction(&b, assignChunk(TimesVar, i, formatTimes(chunk)))
	}
	for i, chunk := range chordChunks {
		writeAction(&b, assignChunk(ChordsVar, i, formatInts(chunk)))
	}
	for i, chunk := range pitchChunks {
		writeAction(&b, assignChunk(PitchesVar, i, formatInts(chunk)))
	}
	closeRule(&b)

	return b.String()
}

// ArrayLiteral renders values as a Workshop array-construction expression.
func ArrayLiteral(vals []string) string {
	return "Array(" + strings.Join(vals, ", ") + ")"
}

func assignChunk(name string, index int, vals []string) string {
	return fmt.Sprintf("Global.%v[%v] = %v;", name, index, ArrayLiteral(vals))
}

func formatTimes(times []float64) []string {
	res := make([]string, 0, len(times))
	for _, t := range times {
		res = append(res, util.FormatTime(t))
	}
	return res
}

func formatInts(nums []int) []string {
	res := make([]string, 0, len(nums))
	for _, n := range nums {
		res = append(res, strconv.Itoa(n))
	}
	return res
}

func openRule(b *strings.Builder, name string) {
	b.WriteString("rule(\"" + name + "\")\n")
	b.WriteString("{\n")
	b.WriteString("\tevent\n\t{\n\t\tOngoing - Global;\n\t}\n\n")
	b.WriteString("\tactions\n\t{\n")
}

func writeAction(b *strings.Builder, action string) {
	b.WriteString("\t\t" + action + "\n")
}

func closeRule(b *strings.Builder) {
	b.WriteString("\t}\n}\n")
}
