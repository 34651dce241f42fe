package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifetrack/internal/api"
	"github.com/julianstephens/lifetrack/internal/cache"
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/constants"
	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/keyring"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/quotes"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"Backend base URL." env:"LIFETRACK_API"`
	Debug   bool   `help:"Verbose logging to stderr and the log file."`
	NoCache bool   `help:"Disable the offline response cache."`

	Login  cli.LoginCmd  `cmd:"" help:"Log in and store the session token."`
	Logout cli.LogoutCmd `cmd:"" help:"Log out and clear the session token."`
	Whoami cli.WhoamiCmd `cmd:"" help:"Show the logged-in profile."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive calendar." default:"1"`
	Calendar cli.CalendarCmd `cmd:"" help:"Print the monthly habit calendar."`
	Streak   cli.StreakCmd   `cmd:"" help:"Show the joint streak across habits."`
	Log      cli.LogCmd      `cmd:"" help:"Record habit statuses for a day."`

	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits."`
		Show   cli.HabitShowCmd   `cmd:"" help:"Show one habit with streak and history."`
		Edit   cli.HabitEditCmd   `cmd:"" help:"Edit a habit."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit and its logs."`
	} `cmd:"" help:"Manage habits."`

	Diet struct {
		Add     cli.DietAddCmd     `cmd:"" help:"Log a food item."`
		List    cli.DietListCmd    `cmd:"" help:"List diet entries for a day."`
		Delete  cli.DietDeleteCmd  `cmd:"" help:"Delete a diet entry."`
		Summary cli.DietSummaryCmd `cmd:"" help:"Show a day's nutrition totals."`
		Lookup  cli.DietLookupCmd  `cmd:"" help:"Search nutrition data for a food."`
		Goal    cli.DietGoalCmd    `cmd:"" help:"Show or set the daily calorie goal."`
	} `cmd:"" help:"Track meals and nutrition."`

	Invest struct {
		Add     cli.InvestAddCmd     `cmd:"" help:"Record an investment purchase."`
		List    cli.InvestListCmd    `cmd:"" help:"List portfolio holdings."`
		Update  cli.InvestUpdateCmd  `cmd:"" help:"Update a holding's current price or value."`
		Delete  cli.InvestDeleteCmd  `cmd:"" help:"Delete a holding."`
		Summary cli.InvestSummaryCmd `cmd:"" help:"Show the portfolio rollup."`
		Price   cli.InvestPriceCmd   `cmd:"" help:"Fetch the current price for a symbol."`
	} `cmd:"" help:"Track investments."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit, diet, and investment tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if dir, err := os.UserConfigDir(); err == nil {
		if err := logger.Init(logger.Config{
			Debug:     CLI.Debug,
			ConfigDir: filepath.Join(dir, constants.AppName),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		}
	}

	base := CLI.Server
	if base == "" {
		base = constants.DefaultAPIBase
	}

	token, err := keyring.GetToken()
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("keyring unavailable", "error", err)
	}

	appCtx := &cli.Context{
		Client: api.New(base, token),
		Quotes: quotes.NewProvider(),
	}

	if !CLI.NoCache {
		path, err := cache.DefaultPath(constants.AppName)
		if err == nil {
			store := cache.NewStore(path)
			if err := store.Open(); err == nil {
				appCtx.Cache = store
				defer store.Close()
			} else {
				logger.Debug("cache unavailable", "error", err)
			}
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
