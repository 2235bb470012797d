// Command tickerctl prints what the widget service would serve, straight
// from the league API, as tables or JSON.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	_ "time/tzdata"

	"github.com/alecthomas/kong"

	"github.com/preston-bernstein/nhl-ticker-service/internal/bootstrap"
	"github.com/preston-bernstein/nhl-ticker-service/internal/config"
	"github.com/preston-bernstein/nhl-ticker-service/internal/logging"
)

type cli struct {
	JSON bool `help:"Print JSON instead of tables."`

	Games     gamesCmd     `cmd:"" help:"List upcoming and recent games for a team."`
	Standings standingsCmd `cmd:"" help:"Show a division table."`
	Networks  networksCmd  `cmd:"" help:"Preview how raw network names are filtered and renamed."`
}

// env is bound into every command's Run.
type env struct {
	ctx  context.Context
	app  bootstrap.Components
	out  io.Writer
	json bool
}

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Exit)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tickerctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, exit func(int), opts ...bootstrap.Option) error {
	cfg := config.Load()

	var c cli
	parser, err := kong.New(&c,
		kong.Name("tickerctl"),
		kong.Description("Inspect NHL schedules, standings and broadcast naming."),
		kong.UsageOnError(),
		kong.Writers(out, out),
		kong.Exit(exit),
		kong.Vars{
			"team":     cfg.TeamCode,
			"upcoming": strconv.Itoa(cfg.LimitUpcoming),
			"recent":   strconv.Itoa(cfg.LimitRecent),
		},
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if level == "" {
		level = "warn"
	}
	logger := logging.NewLoggerTo(os.Stderr, logging.Config{Level: level, Format: cfg.Logging.Format})
	for _, warning := range cfg.Warnings {
		logger.Warn("configuration warning", "detail", warning)
	}

	app := bootstrap.Build(cfg, logger, nil, opts...)
	return kctx.Run(&env{ctx: ctx, app: app, out: out, json: c.JSON})
}
