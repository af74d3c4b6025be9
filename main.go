package main

import "github.com/RyantheKing/owmidiconverter/cmd"

func main() {
	cmd.Execute()
}
