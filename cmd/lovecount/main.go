package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lovecount/internal/cli"
	"github.com/julianstephens/lovecount/internal/cli/backups"
	"github.com/julianstephens/lovecount/internal/cli/couple"
	"github.com/julianstephens/lovecount/internal/cli/daily"
	"github.com/julianstephens/lovecount/internal/cli/fun"
	"github.com/julianstephens/lovecount/internal/cli/lists"
	"github.com/julianstephens/lovecount/internal/cli/system"
	"github.com/julianstephens/lovecount/internal/config"
	"github.com/julianstephens/lovecount/internal/constants"
	"github.com/julianstephens/lovecount/internal/errors"
	"github.com/julianstephens/lovecount/internal/logger"
	"github.com/julianstephens/lovecount/internal/love"
	"github.com/julianstephens/lovecount/internal/notifier"
	"github.com/julianstephens/lovecount/internal/state"
	"github.com/julianstephens/lovecount/internal/storage"
)

// App is the root command model.
type App struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path. Defaults to ~/.config/lovecount/config.yaml." type:"string"`
	Store   string `help:"Store path, ':memory:', 'keyring', or a PostgreSQL connection string without credentials. Overrides the config file."`
	Verbose bool   `help:"Enable debug logging." short:"v"`

	Init    system.InitCmd    `cmd:"" help:"Initialize lovecount storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Debug   system.DebugCmd   `cmd:"" help:"Debug commands for troubleshooting."`
	Keyring system.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Reset   system.ResetCmd   `cmd:"" help:"Erase every lovecount record."`
	Backup  backups.BackupCmd `cmd:"" help:"Manage backups."`

	Setup     couple.SetupCmd     `cmd:"" help:"Create or edit the couple profile."`
	Profile   couple.ProfileCmd   `cmd:"" help:"Show or clear the couple profile."`
	Countdown couple.CountdownCmd `cmd:"" help:"Show the time left until you meet."`
	Watch     couple.WatchCmd     `cmd:"" help:"Live countdown in the terminal."`
	Compat    couple.CompatCmd    `cmd:"" help:"Name compatibility score."`
	Silent    couple.SilentCmd    `cmd:"" help:"Toggle silent mode."`

	Mood    daily.MoodCmd    `cmd:"" help:"Set or show today's moods."`
	Miss    daily.MissCmd    `cmd:"" help:"Click 'I miss you' or show today's counter."`
	Diary   daily.DiaryCmd   `cmd:"" help:"Write or read the shared diary."`
	Capsule daily.CapsuleCmd `cmd:"" help:"Seal, open or delete the time capsule."`
	Stats   daily.StatsCmd   `cmd:"" help:"Show the love stats dashboard."`

	Truth     fun.TruthCmd     `cmd:"" help:"Draw a truth question."`
	Dare      fun.DareCmd      `cmd:"" help:"Draw a dare."`
	History   fun.HistoryCmd   `cmd:"" help:"Show truth or dare history."`
	Wheel     fun.WheelCmd     `cmd:"" help:"Spin or edit the decision wheels."`
	Challenge fun.ChallengeCmd `cmd:"" help:"Draw a date challenge."`
	Message   fun.MessageCmd   `cmd:"" help:"Show a cute message."`
	Quote     fun.QuoteCmd     `cmd:"" help:"Show today's quote."`
	Quiz      fun.QuizCmd      `cmd:"" help:"How well do you know each other?"`
	Letter    fun.LetterCmd    `cmd:"" help:"Write a love letter."`

	Bucket  lists.BucketCmd  `cmd:"" help:"Manage the bucket list."`
	Promise lists.PromiseCmd `cmd:"" help:"Manage promises."`
	Memory  lists.MemoryCmd  `cmd:"" help:"Manage the memory timeline."`
}

var CLI App

func parserOptions() []kong.Option {
	return []kong.Option{
		kong.Name(constants.AppName),
		kong.Description("Countdown companion for couples waiting to meet"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	}
}

func main() {
	ctx := kong.Parse(&CLI, parserOptions()...)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Store != "" {
		cfg.Store = storage.ExpandHome(CLI.Store)
		cfg.DBConnection = ""
	}
	cfg.Debug = cfg.Debug || CLI.Verbose

	command := ""
	if ctx.Selected() != nil {
		command = ctx.Selected().Name
	}
	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: config.ConfigDir(),
		Quiet:     command == "tui",
	}); err != nil {
		// Logging is best effort; keep going without a log file.
		fmt.Println(errors.Formatf("failed to initialize logger: %v", err))
	}

	loc, err := cfg.Location()
	if err != nil {
		errors.Fatal(err)
	}

	store, err := storage.New(cfg.StoreTarget())
	if err != nil {
		errors.Fatal(err)
	}
	// Init handles its own loading.
	if command != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	appCtx := &cli.Context{
		Store:    store,
		State:    state.New(store, state.WithLocation(loc)),
		Config:   cfg,
		Picker:   love.NewPicker(nil),
		Notifier: notifier.New(),
	}
	logger.Debug("running command", "command", command, "store", storage.KindOf(cfg.StoreTarget()))

	err = ctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil {
		logger.Warn("failed to close store", "error", cerr)
	}
	errors.Fatal(err)
}
