package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/lvx93/tdate/internal/app"
	"github.com/lvx93/tdate/internal/log"
	"github.com/lvx93/tdate/pkg/config"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

const versionBanner = `tdate %s
93 93/93
Do what thou wilt shall be the whole of the Law.
Love is the law, love under will.
`

func main() {
	// Liber OZ bypasses everything else, whatever other arguments were
	// given and wherever the flag sits among them.
	for _, arg := range os.Args[1:] {
		if arg == "--oz" || arg == "-oz" {
			fmt.Print(app.LiberOZ)
			os.Exit(0)
		}
	}

	cfgFile := flag.String("config", "", "Path to optional YAML configuration file")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Bool("oz", false, "") // handled above; registered so -h lists it
	var location string
	flag.StringVar(&location, "location", "", `Location for date calculation (e.g., "Las Vegas, NV")`)
	flag.StringVar(&location, "l", "", "Location for date calculation (shorthand)")
	flag.Parse()

	if *showVersion {
		fmt.Printf(versionBanner, version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Load configuration
	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := app.New(cfg, log.GetSugaredLogger())
	result, err := application.Run(context.Background(), location, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result)
}

func loadConfig(cfgFile string) (*config.Data, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}

	filename, _ := filepath.Abs(cfgFile)
	cfg, err := config.NewYAMLProvider(filename).LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return cfg, nil
}
