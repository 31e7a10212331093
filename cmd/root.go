package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fundboard/fundboard/internal/config"
	"github.com/fundboard/fundboard/internal/config/data"
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/ui"
	"github.com/fundboard/fundboard/internal/view"
)

const appName = config.AppName

var (
	version = "dev"
	commit  = "none"

	fbFlags *data.Flags
	rootCmd = &cobra.Command{
		Use:   appName + " [source]",
		Short: "A terminal dashboard for school fees data",
		Long: `fundboard browses students, fees and payments as filterable, sortable tables.
Rows come from the fundboard API, a local JSON/YAML/CSV file, an HTTP URL or an S3 object.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
)

func init() {
	fbFlags = config.NewFlags()
	initFlags()
	rootCmd.AddCommand(versionCmd(), exportCmd())
}

func initFlags() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(fbFlags.View, "view", "v", "", "View to open (students, fees, payments, ...)")
	pf.StringVar(fbFlags.Search, "search", "", "Column the filter applies to")
	pf.StringVar(fbFlags.Filter, "filter", "", "Initial filter text")
	pf.Float32VarP(fbFlags.RefreshRate, "refresh", "r", 0, "Refresh rate in seconds")
	pf.StringVar(fbFlags.APIURL, "api", "", "Backend base URL")
	pf.StringVar(fbFlags.Token, "token", "", "Bearer token, overrides the saved session")
	pf.StringVar(fbFlags.SchoolID, "school", "", "School ID, overrides the saved session")
	pf.StringVar(fbFlags.YearID, "year", "", "Academic year ID, defaults to the school's active year")
	pf.StringToStringVar(fbFlags.Params, "param", nil, "Endpoint placeholder values, e.g. offer_id=3")
	pf.StringVar(fbFlags.Status, "status", "", "Only list records with this status (all to disable)")
	pf.StringVar(fbFlags.Class, "class", "", "Only list records of this class ID (all to disable)")
	pf.StringVar(fbFlags.Profile, "profile", "", "AWS profile used by s3:// sources")
	pf.StringVar(fbFlags.Region, "region", "", "AWS region used by s3:// sources")
	pf.StringVarP(fbFlags.LogLevel, "logLevel", "l", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	pf.StringVar(fbFlags.LogFile, "logFile", "", "Log file path")

	rootCmd.Flags().IntVar(fbFlags.PageSize, "page-size", 0, "Initial page size")
	rootCmd.Flags().BoolVar(fbFlags.Headless, "headless", false, "Print the first page and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := setup(fbFlags)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	b, err := loadBoard(ctx, fbFlags, args, logger)
	if err != nil {
		return err
	}
	defer b.table.Close()

	if config.IsBoolSet(fbFlags.Headless) {
		return headless(ctx, cmd.OutOrStdout(), b)
	}

	return runApp(b, logger)
}

func headless(ctx context.Context, out io.Writer, b *board) error {
	if err := b.data.Refresh(ctx); err != nil {
		return err
	}

	return ui.NewPlainRenderer[dao.Record](out, false).Render(b.renderer.Title(), b.table)
}

func runApp(b *board, logger *slog.Logger) error {
	app := view.NewApp(version, logger)
	app.Init()
	app.EnableMouse(b.cfg.Fundboard.UI.EnableMouse)

	app.Info().Update(view.InfoLines(b.session, b.sid.String(), b.factory.AWS(), version))

	tv := view.NewTableView(b.renderer, b.data, b.cfg.Fundboard.PageSizes, logger)
	if err := app.PushTable(tv); err != nil {
		return err
	}
	defer tv.Close()

	if err := app.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", appName, err)
	}

	return nil
}

// setup initializes the app directories and the default logger.
func setup(flags *data.Flags) (*slog.Logger, func(), error) {
	if err := config.InitLocs(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize locations: %w", err)
	}

	path := config.AppLogFile
	if config.IsStringSet(flags.LogFile) {
		path = *flags.LogFile
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(*flags.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", *flags.LogLevel, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logger.Info("🏫 fundboard starting up...", "version", version, "commit", commit)

	return logger, func() { _ = f.Close() }, nil
}
