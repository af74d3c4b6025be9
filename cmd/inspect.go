package cmd

import (
	"fmt"

	"github.com/RyantheKing/owmidiconverter/chord"
	"github.com/RyantheKing/owmidiconverter/midi"
	"github.com/RyantheKing/owmidiconverter/model"
	"github.com/RyantheKing/owmidiconverter/pack"
	"github.com/RyantheKing/owmidiconverter/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a midi file",
	Long:  `Prints what aggregation would produce without emitting rules.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inspect(args[0])
	},
}

func inspect(path string) {
	song, err := midi.ReadSong(path)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}

	agg := chord.Aggregate(song, model.DefaultSettings())
	fmt.Printf("tracks: %v\n", len(song.Tracks))
	fmt.Printf("duration: %v\n", util.FormatTime(song.Duration))
	fmt.Printf("chords: %v\n", len(agg.Chords))
	fmt.Printf("transposed notes: %v\n", agg.TransposedNotes)
	fmt.Printf("skipped notes: %v\n", agg.SkippedNotes)
	for _, w := range agg.Warnings {
		fmt.Printf("WARNING: %v\n", w)
	}
	for _, e := range agg.Errors {
		fmt.Printf("ERROR: %v\n", e)
	}
	if len(agg.Chords) == 0 {
		return
	}

	var elements int
	for _, c := range agg.Chords {
		elements += pack.Cost(c)
	}
	fmt.Printf("first chord: %v\n", util.FormatTime(agg.Chords[0].Time))
	fmt.Printf("last chord: %v\n", util.FormatTime(agg.Chords[len(agg.Chords)-1].Time))
	fmt.Printf("element estimate: %v\n", elements)
}
