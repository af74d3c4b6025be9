package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "owmidiconverter",
	Short: "Converts midi files into Overwatch Workshop piano data",
	Long:  `Converts midi files into the array rules the Workshop piano script plays back.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
