package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/cli"
)

func main() {
	log.SetPrefix("fakecheck: ")
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
