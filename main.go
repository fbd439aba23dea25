package main

import "github.com/asciiforge/asciiforge/cmd"

func main() {
	cmd.Execute()
}
