package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RyantheKing/owmidiconverter/constants"
	"github.com/RyantheKing/owmidiconverter/convert"
	"github.com/RyantheKing/owmidiconverter/db"
	"github.com/RyantheKing/owmidiconverter/file"
	"github.com/RyantheKing/owmidiconverter/model"
	"github.com/RyantheKing/owmidiconverter/util"
	"github.com/spf13/cobra"
)

var convertStartTime float64
var convertVoices int
var convertOut string
var convertMetadata bool

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().Float64Var(&convertStartTime, "start-time", 0, "skip notes before this many seconds")
	convertCmd.Flags().IntVar(&convertVoices, "voices", constants.DefaultVoices, "max pitches per chord (6-11)")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "output path (default: input with .ow.txt)")
	convertCmd.Flags().BoolVar(&convertMetadata, "metadata", false, "look up song metadata")
}

var convertCmd = &cobra.Command{
	Use:   "convert <file.mid>",
	Short: "Converts one midi file",
	Long:  `Converts one midi file and writes the Workshop rules next to it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		settings := model.Settings{StartTime: convertStartTime, Voices: convertVoices}
		if !runConvert(args[0], convertOut, settings) {
			os.Exit(1)
		}
	},
}

func runConvert(path string, outPath string, settings model.Settings) bool {
	res, err := convert.File(path, settings)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return false
	}

	for _, w := range res.Warnings {
		fmt.Printf("WARNING: %v\n", w)
	}
	for _, e := range res.Errors {
		fmt.Printf("ERROR: %v\n", e)
	}
	if len(res.Errors) > 0 {
		return false
	}

	if convertMetadata {
		printMetadata(path)
	}

	if outPath == "" {
		outPath = file.OutputPath(path)
	}
	util.WriteFileOrPanic(outPath, res.Rules)

	fmt.Printf("wrote %v\n", outPath)
	fmt.Printf("transposed notes: %v\n", res.TransposedNotes)
	fmt.Printf("skipped notes: %v\n", res.SkippedNotes)
	fmt.Printf("total elements: %v of %v\n", res.TotalElements, constants.ElementBudget)
	fmt.Printf("packed %v of %v seconds\n", util.FormatTime(res.StopTime), util.FormatTime(res.Duration))
	return true
}

func printMetadata(path string) {
	metadatas, err := db.GetSongMetadatas([]string{filepath.Base(path)})
	if err != nil {
		fmt.Printf("metadata unavailable: %v\n", err)
		return
	}
	if m, ok := metadatas[filepath.Base(path)]; ok {
		fmt.Printf("song: %v - %v (%v)\n", m.Artist, m.Title, m.Year)
	}
}
