package main

import "github.com/cialfor/intake/internal/cli"

func main() {
	cli.Execute()
}
