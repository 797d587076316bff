package main

import "github.com/clippick/clippick/internal/cli"

func main() {
	cli.Main()
}
