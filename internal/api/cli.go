package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"marker-clicker/config"
	app "marker-clicker/internal/application"
	"marker-clicker/internal/container"
	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/domain/port"
	"marker-clicker/internal/infrastructure/input"
	"marker-clicker/internal/infrastructure/notify"
)

const usageLong = `Send fake input using a series of bitmaps with red circles indicating where to click.

Each file must be an uncompressed 24-bit BMP. For every file the center of the
largest pure red (#FF0000) circle is located, the pointer is moved there and
the primary button is clicked. Files are processed in argument order.`

type options struct {
	dryRun      bool
	jsonOutput  bool
	failFast    bool
	verbose     bool
	annotateDir string
	display     string
}

// Deps внешние подключения, которые открывает команда
type Deps struct {
	OpenInjector func(display string) (port.InputInjector, error)
	OpenNotifier func(token string, chatID int64) (port.ResultNotifier, error)
}

// DefaultDeps подключения к X-серверу и Telegram
func DefaultDeps() Deps {
	return Deps{
		OpenInjector: func(display string) (port.InputInjector, error) {
			return input.OpenXTest(display)
		},
		OpenNotifier: func(token string, chatID int64) (port.ResultNotifier, error) {
			return notify.NewTelegramNotifier(token, chatID)
		},
	}
}

// RunReport итог запуска для вывода в JSON
type RunReport struct {
	Files  []entity.FileReport `json:"files"`
	Failed int                 `json:"failed"`
}

// NewRootCmd создаёт корневую команду marker-clicker
func NewRootCmd(cfg *config.Config, deps Deps) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "marker-clicker [flags] file...",
		Short:         "Click the largest red circle found in each bitmap",
		Long:          usageLong,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cfg, deps, *opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Locate markers without connecting to the display")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the run report as JSON")
	cmd.Flags().BoolVar(&opts.failFast, "fail-fast", false, "Stop at the first file that fails")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging to stderr")
	cmd.Flags().StringVar(&opts.annotateDir, "annotate", "", "Directory for copies of the images with the marker outlined")
	cmd.Flags().StringVar(&opts.display, "display", "", "X display to inject input into (defaults to $DISPLAY)")

	return cmd
}

func run(ctx context.Context, out io.Writer, cfg *config.Config, deps Deps, opts options, files []string) error {
	if opts.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	injector, err := openInjector(cfg, deps, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := injector.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close input connection")
		}
	}()

	var notifier port.ResultNotifier
	if cfg.NotificationsEnabled() && deps.OpenNotifier != nil {
		notifier, err = deps.OpenNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Warn().Err(err).Msg("Telegram notifications disabled")
			notifier = nil
		}
	}

	c := container.New(injector, notifier)
	reports, runErr := c.RunService.Run(ctx, files, app.RunOptions{
		DryRun:      opts.dryRun,
		FailFast:    opts.failFast,
		AnnotateDir: opts.annotateDir,
		ClickDelay:  cfg.ClickDelay,
	})

	if err := writeReports(out, reports, opts.jsonOutput); err != nil {
		return err
	}
	return runErr
}

func openInjector(cfg *config.Config, deps Deps, opts options) (port.InputInjector, error) {
	if opts.dryRun {
		return input.NewDryRunInjector(), nil
	}
	if deps.OpenInjector == nil {
		return nil, fmt.Errorf("%w: no input injector available", entity.ErrInjection)
	}

	display := opts.display
	if display == "" {
		display = cfg.Display
	}
	injector, err := deps.OpenInjector(display)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("display", display).Msg("Connected to input injection service")
	return injector, nil
}

func writeReports(out io.Writer, reports []entity.FileReport, asJSON bool) error {
	failed := 0
	for _, r := range reports {
		if r.Failed() {
			failed++
		}
	}

	if asJSON {
		if reports == nil {
			reports = []entity.FileReport{}
		}
		data, err := sonic.MarshalIndent(RunReport{Files: reports, Failed: failed}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	for _, r := range reports {
		var err error
		switch {
		case r.Failed():
			_, err = fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", r.Path, r.Status, r.Kind, r.Error)
		case r.Marker != nil:
			_, err = fmt.Fprintf(out, "%s\t%s\t%s\tradius=%d\n", r.Path, r.Status, r.Marker.Center, r.Marker.Radius)
		default:
			_, err = fmt.Fprintf(out, "%s\t%s\n", r.Path, r.Status)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
