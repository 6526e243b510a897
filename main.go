package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/patterns"
)

const defaultConfigFile = "config.json"

func main() {
	log.SetHandler(cli.New(os.Stderr))

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		stop()
		log.WithError(err).Fatal("game of life failed")
	}
}

// run parses flags, builds the universe and drives it until it is exhausted,
// stagnates (when configured) or ctx is cancelled.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("go-life", flag.ContinueOnError)
	configFile := fs.String("config", defaultConfigFile, "path to a JSON config file")
	overrides := bindFlags(fs)
	listPatterns := fs.Bool("list", false, "list the built-in patterns and exit")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[run] failed to parse flags")
	}

	if *listPatterns {
		for _, name := range patterns.Names() {
			if _, err := io.WriteString(stdout, name+"\n"); err != nil {
				return errors.Wrap(err, "[run] failed to list patterns")
			}
		}
		return nil
	}

	config, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	overrides.apply(fs, &config)
	if err = config.Validate(); err != nil {
		return err
	}
	log.SetLevel(config.Level())

	universe, err := initializeGame(config)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer, statusOut, closeRenderer, err := newRenderer(config, stdout, cancel)
	if err != nil {
		return err
	}
	defer closeRenderer()

	g := newGame(config, universe, renderer, statusOut)
	displayGameInfo(config, universe)

	reason, err := g.loop(ctx)
	if err != nil {
		return err
	}
	closeRenderer()
	g.displayFinalStats(reason)
	return nil
}
