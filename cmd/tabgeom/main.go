// Command tabgeom lays out tab bar scenarios and previews them in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/daptify14/tabgeom/internal/config"
	"github.com/daptify14/tabgeom/internal/preview"
	"github.com/daptify14/tabgeom/internal/report"
	"github.com/daptify14/tabgeom/internal/scenario"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	// errInvalidScenarios makes check exit non-zero without repeating the report.
	errInvalidScenarios = errors.New("invalid scenarios found")
	errNoScenario       = errors.New("scenario file not found")
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var fit bool
	rootCmd := &cobra.Command{
		Use:   "tabgeom [scenario.yaml]",
		Short: "Tab bar layout previewer",
		Long:  "tabgeom measures and lays out tab bars described by YAML scenarios and previews the result in the terminal.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(scenarioPath(args), fit)
		},
	}
	rootCmd.Version = version + " (commit " + commit + ", built " + date + ")"
	rootCmd.Flags().BoolVar(&fit, "fit", false, "size the bar to the terminal window")

	rootCmd.AddCommand(newLayoutCmd(), newCheckCmd(), newNewCmd())
	return rootCmd
}

func scenarioPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.DefaultPath()
}

type layoutOptions struct {
	format string
	color  bool
	light  bool
	sel    int
}

// chromaStyle names the highlight style of the preview theme for the
// terminal background.
func (o layoutOptions) chromaStyle() string {
	return preview.ThemeForBackground(!o.light).ChromaStyleName
}

func newLayoutCmd() *cobra.Command {
	opts := layoutOptions{}
	cmd := &cobra.Command{
		Use:   "layout [scenario.yaml]",
		Short: "Print the computed geometry of a scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd.OutOrStdout(), scenarioPath(args), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text or yaml")
	cmd.Flags().BoolVar(&opts.color, "color", false, "syntax-highlight yaml output")
	cmd.Flags().BoolVar(&opts.light, "light", false, "highlight for a light terminal background")
	cmd.Flags().IntVarP(&opts.sel, "select", "s", -1, "select this tab before printing")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <dir>",
		Short: "Validate every scenario file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCheck(cmd.Context(), cmd.OutOrStdout(), args[0])
			if errors.Is(err, errInvalidScenarios) {
				cmd.SilenceUsage = true
			}
			return err
		},
	}
}

func newNewCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "new <scenario.yaml>",
		Short: "Create a scenario interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Clean(args[0])
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			cfg, err := preview.RunWizard()
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// debugLogger returns a JSON logger writing to $TABGEOM_DEBUG, or nil when
// the variable is unset. The returned closer is never nil.
func debugLogger() (*slog.Logger, func(), error) {
	debugPath := os.Getenv("TABGEOM_DEBUG")
	if debugPath == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(filepath.Clean(debugPath), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600) //#nosec G304 -- developer-controlled debug log path
	if err != nil {
		return nil, func() {}, fmt.Errorf("debug log: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

func loadService(path string, logger *slog.Logger) (*scenario.Service, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w (create one with \"tabgeom new %s\")", path, errNoScenario, path)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	svc, err := scenario.New(cfg, scenario.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return svc, nil
}

func runPreview(path string, fit bool) error {
	debugLog, closeLog, err := debugLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	svc, err := loadService(path, debugLog)
	if err != nil {
		return err
	}

	model := preview.NewModel(preview.Options{
		Service:   svc,
		Source:    path,
		FitWindow: fit,
		DebugLog:  debugLog,
	})
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("error: %w", err)
	}
	return nil
}

func runLayout(w io.Writer, path string, opts layoutOptions) error {
	debugLog, closeLog, err := debugLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	svc, err := loadService(path, debugLog)
	if err != nil {
		return err
	}
	if opts.sel >= 0 {
		if _, err := svc.Select(opts.sel); err != nil {
			return err
		}
	}
	doc := report.FromService(svc)

	switch opts.format {
	case "text":
		return report.WriteText(w, doc)
	case "yaml":
		data, err := report.MarshalYAML(doc)
		if err != nil {
			return err
		}
		out := string(data)
		if opts.color {
			out = report.Highlight(out, opts.chromaStyle())
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		return fmt.Errorf("invalid format %q (valid: text, yaml)", opts.format)
	}
}

func runCheck(ctx context.Context, w io.Writer, dir string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := report.Check(ctx, dir)
	if err != nil {
		return err
	}
	failed := 0
	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(w, "ok    %s\n", r.Path)
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL  %s: %v\n", r.Path, r.Err)
	}
	fmt.Fprintf(w, "%d scenario(s), %d invalid\n", len(results), failed)
	if failed > 0 {
		return errInvalidScenarios
	}
	return nil
}
