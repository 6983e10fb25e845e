package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	apppkg "github.com/kk-code-lab/msgitem/internal/app"
	"github.com/kk-code-lab/msgitem/internal/catalog"
	"github.com/kk-code-lab/msgitem/internal/config"
	"github.com/pkg/errors"
)

func printHelp(w io.Writer) {
	fmt.Fprint(w, `msgitem - Item menu with paginated item messages

USAGE:
    msgitem [OPTIONS] [CATALOG]

ARGUMENTS:
    CATALOG               Item catalog YAML (default: items.yaml or the config's catalog)

OPTIONS:
    -h, --help            Show this help message and exit
    -c, --config FILE     Read settings from a YAML configuration file
`)
}

type options struct {
	help       bool
	configPath string
	catalog    string
}

func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			opts.help = true
		case arg == "-c" || arg == "--config":
			if i+1 >= len(args) {
				return opts, errors.Errorf("%s requires a file argument", arg)
			}
			i++
			opts.configPath = args[i]
		case strings.HasPrefix(arg, "--config="):
			opts.configPath = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-") && arg != "-":
			return opts, errors.Errorf("unknown option %s", arg)
		default:
			if opts.catalog != "" {
				return opts, errors.Errorf("unexpected argument %s", arg)
			}
			opts.catalog = arg
		}
	}
	return opts, nil
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if opts.catalog != "" {
		cfg.Catalog = opts.catalog
	}
	return cfg, nil
}

func loadCatalog(path string, log logr.Logger) ([]*catalog.Entry, error) {
	db := catalog.NewDatabase(log.WithName("catalog"))
	db.AddLoadHook(catalog.MessageNoteHook(log.WithName("catalog")))
	if err := db.LoadFile(path); err != nil {
		return nil, err
	}
	db.Ready()
	return db.Entries(), nil
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printHelp(os.Stderr)
		os.Exit(2)
	}
	if opts.help {
		printHelp(os.Stdout)
		os.Exit(0)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, logCloser, err := apppkg.NewFileLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	entries, err := loadCatalog(cfg.Catalog, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app, err := apppkg.NewApplication(cfg, entries, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
