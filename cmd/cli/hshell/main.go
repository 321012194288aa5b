package main

import (
	"fmt"
	"os"

	"github.com/core-tools/hsu-shell/pkg/logging"
	"github.com/core-tools/hsu-shell/pkg/shell"

	flags "github.com/jessevdk/go-flags"
)

type flagOptions struct {
	Config   string `long:"config" description:"path to shell configuration file"`
	LogFile  string `long:"log-file" description:"write diagnostic logs to this file"`
	LogLevel string `long:"log-level" description:"diagnostic log level (debug, info, warn, error)"`
}

func main() {
	var opts flagOptions
	var argv []string = os.Args[1:]
	var parser = flags.NewParser(&opts, flags.HelpFlag)
	var err error
	_, err = parser.ParseArgs(argv)
	if err != nil {
		fmt.Printf("Command line flags parsing failed: %v\n", err)
		os.Exit(1)
	}

	config := shell.DefaultConfig()
	if opts.Config != "" {
		config, err = shell.LoadConfigFromFile(opts.Config)
		if err != nil {
			fmt.Printf("Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
	}

	// Flags override the file.
	if opts.LogFile != "" {
		config.Log.FilePath = opts.LogFile
	}
	if opts.LogLevel != "" {
		config.Log.Level = opts.LogLevel
	}

	if err := shell.ValidateConfig(config); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewNopLogger()
	if config.Log.FilePath != "" {
		var flush func()
		logger, flush, err = logging.NewZapLogger(logging.ZapConfig{
			FilePath: config.Log.FilePath,
			Level:    config.Log.Level,
		})
		if err != nil {
			fmt.Printf("Failed to create logger: %v\n", err)
			os.Exit(1)
		}
		defer flush()
	}

	session := shell.NewSession(config, logger)
	if err := session.Run(); err != nil {
		os.Exit(1)
	}
}
