// Command life-run advances a board without a window and reports how the
// population evolves. It shares its configuration with the GUI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"lifepaint/internal/config"
	"lifepaint/internal/grid"
	"lifepaint/internal/sim"
)

// printLimit caps the board size written by -print.
const printLimit = 200 * 200

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out, errOut io.Writer, args []string) error {
	cfg := config.Default()
	cfg.Random = true

	fs := flag.NewFlagSet("life-run", flag.ContinueOnError)
	fs.SetOutput(errOut)
	cfgPath := fs.String("config", "", "optional HCL config file")
	gens := fs.Int("gens", 100, "generations to run")
	every := fs.Int("every", 10, "log the population every N generations (0 disables)")
	printBoard := fs.Bool("print", false, "print the final board")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cfgPath != "" {
		if err := cfg.LoadFile(*cfgPath); err != nil {
			return err
		}
		if err := fs.Parse(args); err != nil {
			return err
		}
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if *gens < 0 {
		return fmt.Errorf("%w: gens %d must not be negative", config.ErrInvalid, *gens)
	}

	logger := cfg.Logger(errOut)
	session := sim.New(cfg, logger)
	view := session.View()
	logger.Info("board ready",
		"rows", view.Rows(), "cols", view.Cols(),
		"cell_size", session.CellSize(), "population", session.Population())
	if session.Population() == 0 {
		logger.Warn("board is empty; pass -random to seed it")
	}

	session.Start()
	for i := 0; i < *gens; i++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("interrupted", "generation", session.Generation())
			return err
		}
		session.Tick()
		if *every > 0 && session.Generation()%*every == 0 {
			logger.Info("tick", "generation", session.Generation(), "population", session.Population())
		}
	}

	fmt.Fprintf(out, "generation %d population %d\n", session.Generation(), session.Population())
	if *printBoard {
		g, ok := session.View().(*grid.Grid)
		if ok && g.Rows()*g.Cols() <= printLimit {
			fmt.Fprint(out, g.String())
		}
	}
	return nil
}
