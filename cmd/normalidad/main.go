package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/UltimoSamurai123/Normalidad-Regresion/internal/app"
	"github.com/UltimoSamurai123/Normalidad-Regresion/internal/log"
	"github.com/UltimoSamurai123/Normalidad-Regresion/pkg/config"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	cfgFile := flag.String("config", "", "Path to an optional YAML settings file")
	inputDir := flag.String("dir", "", "Directory holding exactly one .xlsx workbook (default \".\")")
	output := flag.String("output", "", "Chart output path (default \"Normalidad_01.png\")")
	k := flag.Float64("k", 0, "Sensitivity coefficient for the stability threshold (default 0.5)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("normalidad %s\n", version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	settings, err := loadSettings(*cfgFile, *inputDir, *output, *k)
	if err != nil {
		log.Errorf("Failed to load settings: %v", err)
		os.Exit(1)
	}

	application := app.New(settings, log.GetSugaredLogger())
	if err := application.Run(context.Background()); err != nil {
		log.Errorf("Analysis failed: %v", err)
		os.Exit(1)
	}
}

// loadSettings layers the configuration sources: compiled-in defaults, then
// the YAML file, then the environment, then explicit flags.
func loadSettings(cfgFile, inputDir, output string, k float64) (*config.Settings, error) {
	settings, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := settings.ApplyEnv(); err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			settings.InputDir = inputDir
		case "output":
			settings.OutputFile = output
		case "k":
			settings.Sensitivity = k
		}
	})

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
