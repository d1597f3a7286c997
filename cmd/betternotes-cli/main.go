package main

import "betternotes/cmd/betternotes-cli/cmd"

func main() {
	cmd.Execute()
}
