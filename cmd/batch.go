package cmd

import (
	"fmt"
	"strconv"

	"github.com/RyantheKing/owmidiconverter/file"
	"github.com/RyantheKing/owmidiconverter/model"
	"github.com/RyantheKing/owmidiconverter/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir> [maxNum]",
	Short: "Converts every midi file under a directory",
	Long:  `Converts every midi file under a directory`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 2 {
			arg2, err := strconv.Atoi(args[1])
			if err != nil {
				panic(err)
			}
			maxNum = arg2
		}

		runBatch(args[0], maxNum)
	},
}

func runBatch(dir string, maxNum int) {
	paths := util.GatherAllMidiPaths(dir, maxNum)
	fileNumMap := file.CreateFileNumMap(paths)

	var converted int
	keys := util.GetKeys(fileNumMap)
	for i, num := range keys {
		path := fileNumMap[num]
		fmt.Printf("Processing %v of %v midi files\n", i+1, len(keys))
		if runConvert(path, file.OutputPath(path), model.DefaultSettings()) {
			converted++
		}
	}
	fmt.Printf("converted %v of %v files\n", converted, len(keys))
}
