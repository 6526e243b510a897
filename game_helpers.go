package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	reasonExhausted   = "max epoch reached"
	reasonInterrupted = "interrupted"
	reasonExtinct     = "extinction"
	reasonStagnant    = "stagnation detected"
)

// flagOverrides holds command line values that replace config file values
// when the flag is given explicitly.
type flagOverrides struct {
	pattern  *string
	epochs   *int
	size     *int
	rate     *time.Duration
	renderer *string
	color    *bool
	workers  *int
}

func bindFlags(fs *flag.FlagSet) flagOverrides {
	defaults := utils.DefaultConfig()
	return flagOverrides{
		pattern:  fs.String("pattern", defaults.Pattern, "seed pattern name"),
		epochs:   fs.Int("epochs", defaults.MaxEpoch, "maximum epoch"),
		size:     fs.Int("size", defaults.Size, "board side length"),
		rate:     fs.Duration("rate", defaults.FrameRate, "delay between epochs"),
		renderer: fs.String("renderer", defaults.Renderer, "text or screen"),
		color:    fs.Bool("color", defaults.Color, "colored text output"),
		workers:  fs.Int("workers", defaults.Workers, "row bands evaluated in parallel, 0 for one per CPU"),
	}
}

func (o flagOverrides) apply(fs *flag.FlagSet, config *utils.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pattern":
			config.Pattern = *o.pattern
		case "epochs":
			config.MaxEpoch = *o.epochs
		case "size":
			config.Size = *o.size
		case "rate":
			config.FrameRate = *o.rate
		case "renderer":
			config.Renderer = *o.renderer
		case "color":
			config.Color = *o.color
		case "workers":
			config.Workers = *o.workers
		}
	})
}

// loadConfig falls back to defaults only when the default config file is absent
func loadConfig(filename string) (utils.Config, error) {
	config, err := utils.LoadConfig(filename)
	switch {
	case err == nil:
		return config, nil
	case errors.Is(err, os.ErrNotExist) && filename == defaultConfigFile:
		log.Infof("using default configuration (%s not found)", filename)
		return utils.DefaultConfig(), nil
	default:
		return config, err
	}
}

// initializeGame builds the board, seeds the configured pattern and wraps it
// in a universe
func initializeGame(config utils.Config) (*model.Universe, error) {
	grid, err := model.NewGrid(config.Size)
	if err != nil {
		return nil, err
	}

	pattern, err := patterns.Lookup(config.Pattern)
	if err != nil {
		return nil, err
	}
	if config.OffsetX < 0 || config.OffsetY < 0 {
		pattern = pattern.Center(config.Size)
	} else {
		pattern = pattern.Translate(config.OffsetX, config.OffsetY)
	}
	if err = grid.Seed(pattern.Cells...); err != nil {
		return nil, errors.Wrapf(err, "[initializeGame] pattern %q does not fit a %dx%d board",
			pattern.Name, config.Size, config.Size)
	}

	return model.NewUniverse(grid, config.MaxEpoch,
		model.WithWorkers(config.Workers),
		model.WithBoundedRegion(config.UseBoundedGrid),
		model.WithLogger(log.Log),
	)
}

// newRenderer returns the renderer, the writer for status lines (nil when the
// renderer owns the terminal) and an idempotent close function.
func newRenderer(
	config utils.Config,
	stdout io.Writer,
	cancel context.CancelFunc,
) (model.Renderer, io.Writer, func(), error) {
	if config.Renderer == utils.RendererText {
		renderer := &model.TextRenderer{
			Out:     stdout,
			Color:   config.Color,
			MaxRows: config.DisplayLimit,
		}
		return renderer, stdout, func() {}, nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[newRenderer] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, nil, nil, errors.Wrap(err, "[newRenderer] failed to initialize screen")
	}
	go watchKeys(screen, cancel)

	var once sync.Once
	return model.NewScreenRenderer(screen), nil, func() { once.Do(screen.Fini) }, nil
}

// watchKeys cancels the run on Esc, Ctrl+C or q. The screen swallows SIGINT
// while it is active.
func watchKeys(screen tcell.Screen, cancel context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
				return
			}
		}
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, universe *model.Universe) {
	log.WithFields(log.Fields{
		"pattern":    config.Pattern,
		"size":       universe.Size(),
		"max_epoch":  universe.MaxEpoch(),
		"population": universe.Snapshot().Population(),
		"bounded":    config.UseBoundedGrid,
		"renderer":   config.Renderer,
	}).Info("starting universe")
}

// game is the driver loop state around one universe
type game struct {
	config    utils.Config
	universe  *model.Universe
	renderer  model.Renderer
	history   *model.History
	stats     *utils.Stats
	statusOut io.Writer
}

func newGame(config utils.Config, universe *model.Universe, renderer model.Renderer, statusOut io.Writer) *game {
	return &game{
		config:    config,
		universe:  universe,
		renderer:  renderer,
		history:   model.NewHistory(config.HistoryDepth),
		stats:     utils.NewStats(),
		statusOut: statusOut,
	}
}

// loop renders the seed, then advances and renders one epoch per frame until
// the universe is exhausted. It returns why it stopped.
func (g *game) loop(ctx context.Context) (string, error) {
	var tick <-chan time.Time
	if g.config.FrameRate > 0 {
		ticker := time.NewTicker(g.config.FrameRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	seed := g.universe.Snapshot()
	g.history.Record(seed)
	if err := g.render(seed, describeStatus(seed.Population(), 0)); err != nil {
		return "", err
	}

	lastFrameTime := time.Now()
	for {
		if !waitFrame(ctx, tick) {
			return reasonInterrupted, nil
		}

		snap, err := g.universe.Advance()
		if errors.Is(err, model.ErrIterationExhausted) {
			return reasonExhausted, nil
		}
		if err != nil {
			return "", err
		}

		now := time.Now()
		g.stats.Update(snap.Epoch(), snap.Population(), now.Sub(lastFrameTime))
		lastFrameTime = now

		period := g.history.Record(snap)
		if err = g.render(snap, describeStatus(snap.Population(), period)); err != nil {
			return "", err
		}

		if !g.config.StopOnStagnation {
			continue
		}
		if snap.Population() == 0 {
			return reasonExtinct, nil
		}
		if period > 0 {
			return reasonStagnant, nil
		}
	}
}

// waitFrame blocks until the next tick. A nil tick means no pacing. It
// returns false once ctx is done.
func waitFrame(ctx context.Context, tick <-chan time.Time) bool {
	if tick == nil {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-tick:
		return true
	}
}

func (g *game) render(snap model.Snapshot, status string) error {
	if g.config.ClearScreen {
		if err := g.renderer.Clear(); err != nil {
			return err
		}
	}
	if err := g.renderer.Display(snap); err != nil {
		return err
	}
	if g.statusOut != nil {
		displayGameStatus(g.statusOut, snap, status)
	}
	return nil
}

// describeStatus names the state of the board given the cycle period found
// by the history
func describeStatus(population, period int) string {
	switch {
	case population == 0:
		return "Extinct"
	case period == 1:
		return "Still life"
	case period > 1:
		return fmt.Sprintf("Oscillating (period %d)", period)
	}
	return "Active"
}

// displayGameStatus shows the current game status below the board
func displayGameStatus(w io.Writer, snap model.Snapshot, status string) {
	density := float64(snap.Population()) / float64(snap.Size()*snap.Size()) * 100
	fmt.Fprintf(w, "Living: %d | Density: %.1f%% | Status: %s\n\n", snap.Population(), density, status)
}

// displayFinalStats logs the run summary
func (g *game) displayFinalStats(reason string) {
	log.WithFields(log.Fields{
		"reason":         reason,
		"epochs":         g.universe.Epoch(),
		"runtime":        g.stats.Runtime().Round(time.Millisecond),
		"gen_per_sec":    fmt.Sprintf("%.1f", g.stats.GenerationsPerSecond),
		"avg_population": fmt.Sprintf("%.1f", g.stats.AveragePopulation),
	}).Info("simulation finished")
}
