package main

import "github.com/andrescamacho/lazysim/internal/adapters/cli"

func main() {
	cli.Execute()
}
