package main

import (
	"flag"
	"log"

	"wirespin/internal/core"
	"wirespin/internal/term"
)

func main() {
	cfg := core.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := term.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
