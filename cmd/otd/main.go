package main

import "github.com/OpenTraceLab/OpenTraceASCII/cmd/otd/cmd"

func main() {
	cmd.Execute()
}
