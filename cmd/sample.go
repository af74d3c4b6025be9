package cmd

import (
	"fmt"
	"os"

	"github.com/RyantheKing/owmidiconverter/midi"
	"github.com/RyantheKing/owmidiconverter/sample"
	"github.com/spf13/cobra"
)

var sampleStartTicks uint64

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().Uint64Var(&sampleStartTicks, "start-ticks", 0, "skip note events before this tick")
}

var sampleCmd = &cobra.Command{
	Use:   "sample <in.mid> <out.mid>",
	Short: "Writes a trimmed midi fixture",
	Long:  `Writes a short midi file keeping only the first few note events, for quick tests.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		makeSample(args[0], args[1])
	},
}

func makeSample(in string, out string) {
	s, err := midi.ReadMidiFile(in)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}

	trimmed := sample.Create(s, sampleStartTicks)

	f, err := os.Create(out)
	if err != nil {
		panic("Could not create sample file: " + err.Error())
	}
	defer f.Close()

	if _, err := trimmed.WriteTo(f); err != nil {
		panic("Could not write sample file: " + err.Error())
	}
	fmt.Printf("wrote %v\n", out)
}
