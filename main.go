package main

import "github.com/mkrebs/commit-extractor/cmd"

func main() {
	cmd.Run()
}
