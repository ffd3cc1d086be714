package main

import (
	"errors"
	"log"
	"os"

	"github.com/brandt-snhu/CS499-Portfolio/internal/config"
	"github.com/brandt-snhu/CS499-Portfolio/internal/freq"
	"github.com/brandt-snhu/CS499-Portfolio/internal/menu"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	table, err := freq.LoadFile(cfg.InputFile)
	if err != nil {
		log.Fatalf("Unable to open file: %v", err)
	}

	session := menu.NewSession(table, os.Stdin, os.Stdout, cfg.OutputFile, cfg.Marker)
	if err := session.Run(); err != nil {
		if errors.Is(err, menu.ErrInputClosed) {
			log.Fatalf("Session ended: %v", err)
		}
		log.Fatalf("Session error: %v", err)
	}
}
