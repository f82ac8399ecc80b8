package main

import "github.com/Msundarv/CFP-NER/internal/cli"

func main() {
	cli.Execute()
}
