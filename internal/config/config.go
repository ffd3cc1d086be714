// Package config resolves the file paths and rendering options for one
// run. Values come from flags, with environment variables (optionally via
// a .env file) taking precedence.
package config

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultInputFile  = "CS210_Project_Three_Input_File.txt"
	defaultOutputFile = "frequency.dat"
	defaultMarker     = "*"
)

type Config struct {
	InputFile  string
	OutputFile string
	Marker     string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	input := flag.String("input", defaultInputFile, "path of the item list to tally")
	output := flag.String("output", defaultOutputFile, "path of the frequency export")
	marker := flag.String("marker", defaultMarker, "histogram marker")
	flag.Parse()

	cfg := fromEnv(Config{
		InputFile:  *input,
		OutputFile: *output,
		Marker:     *marker,
	})
	return &cfg, nil
}

func fromEnv(base Config) Config {
	return Config{
		InputFile:  firstNonEmpty(strings.TrimSpace(os.Getenv("GROCER_INPUT_FILE")), base.InputFile, defaultInputFile),
		OutputFile: firstNonEmpty(strings.TrimSpace(os.Getenv("GROCER_OUTPUT_FILE")), base.OutputFile, defaultOutputFile),
		Marker:     firstNonEmpty(os.Getenv("GROCER_HISTOGRAM_MARKER"), base.Marker, defaultMarker),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
