package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/dayface/internal/cli"
	"github.com/julianstephens/dayface/internal/config"
	"github.com/julianstephens/dayface/internal/constants"
	"github.com/julianstephens/dayface/internal/errors"
	"github.com/julianstephens/dayface/internal/logger"
	"github.com/julianstephens/dayface/internal/storage"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Config file path." type:"path" default:"${config_path}"`
	DB       string `help:"Event store path (.db for SQLite, .json for a JSON file); overrides the config file." name:"db"`
	Timezone string `help:"IANA timezone; overrides the config file."`
	Debug    bool   `help:"Enable debug logging to stderr."`

	Init  cli.InitCmd `cmd:"" help:"Initialize dayface storage and config."`
	Tui   cli.TuiCmd  `cmd:"" help:"Launch the interactive clock face." default:"1"`
	Event struct {
		Add     cli.EventAddCmd     `cmd:"" help:"Add an event."`
		List    cli.EventListCmd    `cmd:"" help:"List a day's events."`
		Delete  cli.EventDeleteCmd  `cmd:"" help:"Delete an event."`
		Restore cli.EventRestoreCmd `cmd:"" help:"Restore a deleted event."`
		Done    cli.EventDoneCmd    `cmd:"" help:"Mark an event as done."`
		Import  cli.EventImportCmd  `cmd:"" help:"Import events from a YAML file."`
	} `cmd:"" help:"Manage events."`
	Layout   cli.LayoutCmd   `cmd:"" help:"Show the linear timeline layout."`
	Clock    cli.ClockCmd    `cmd:"" help:"Show the clock face projection."`
	Tap      cli.TapCmd      `cmd:"" help:"Resolve a tap or drag on the timeline."`
	Hit      cli.HitCmd      `cmd:"" help:"Resolve a tap on the clock face."`
	Rotate   cli.RotateCmd   `cmd:"" help:"Replay drags on the semicircle clock."`
	Astro    cli.AstroCmd    `cmd:"" help:"Show sun and moon markers."`
	Validate cli.ValidateCmd `cmd:"" help:"Check a day's events for conflicts."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Snapshot the event store."`
		List    cli.BackupListCmd    `cmd:"" help:"List snapshots." default:"1"`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Replace the event store with a snapshot."`
	} `cmd:"" help:"Manage event store snapshots."`
	Config_ struct {
		Show cli.ConfigShowCmd `cmd:"" help:"Print the effective configuration." default:"1"`
	} `cmd:"" name:"config" help:"Inspect configuration."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Day planner clock face: linear timeline and circular projection of a day's events"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(fmt.Errorf("failed to load config: %w", err))
	}
	if CLI.DB != "" {
		cfg.Database = CLI.DB
	}
	if CLI.Timezone != "" {
		cfg.Timezone = CLI.Timezone
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: config.Dir(CLI.Config),
		Level:     cfg.LogLevel,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	dbPath, err := config.ExpandPath(cfg.Database)
	if err != nil {
		errors.Fatal(err)
	}
	store := storage.New(dbPath)
	defer store.Close()

	appCtx := &cli.Context{
		Store:      store,
		Config:     cfg,
		ConfigPath: CLI.Config,
	}

	// init manages its own store lifecycle; everything else needs a loaded store.
	if ctx.Command() != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	logger.Debug("running command", "command", ctx.Command(), "db", dbPath)
	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
