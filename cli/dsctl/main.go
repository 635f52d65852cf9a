package main

import (
	"log"

	"github.com/frankonly/datasets/cli"
)

func main() {
	if err := cli.Init(); err != nil {
		log.Fatalf("failed to initialize dsctl: %v", err)
	}

	cli.Execute()
}
