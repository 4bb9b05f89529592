// Package main provides the CLI entrypoint for vocadrill.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vocadrill/vocadrill/internal/config"
	"github.com/vocadrill/vocadrill/internal/explain"
	"github.com/vocadrill/vocadrill/internal/logging"
	"github.com/vocadrill/vocadrill/internal/model"
	"github.com/vocadrill/vocadrill/internal/stats"
	"github.com/vocadrill/vocadrill/internal/store"
	"github.com/vocadrill/vocadrill/internal/theme"
	"github.com/vocadrill/vocadrill/internal/tui"
)

const (
	defaultTheme      = "classic"
	defaultStyle      = "tail"
	defaultDebounceMs = 120
	defaultTickMs     = 500
)

var (
	learnWordsFile  string
	learnTheme      string
	learnReview     bool
	learnStyle      string
	learnQuit       bool
	learnDebounceMs int
	learnTickMs     int

	statsLast int

	explainBaseURL string
	explainModel   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vocadrill",
		Short:         "TUI vocabulary trainer with a disguise hotkey",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runLearnCmd,
	}

	rootCmd.Flags().StringVar(&learnWordsFile, "words-file", "", "path to the word catalog CSV")
	rootCmd.Flags().StringVar(&learnTheme, "theme", defaultTheme, "color theme")
	rootCmd.Flags().BoolVar(&learnReview, "review", false, "start in review mode (starred/missed words)")
	rootCmd.Flags().StringVar(&learnStyle, "disguise-style", defaultStyle, "disguise style: tail or ls")
	rootCmd.Flags().BoolVar(&learnQuit, "disguise-quit", false, "allow quitting with q from the disguise screen")
	rootCmd.Flags().IntVar(&learnDebounceMs, "debounce-ms", defaultDebounceMs, "input debounce window after dismissing the disguise")
	rootCmd.Flags().IntVar(&learnTickMs, "tick-ms", defaultTickMs, "disguise animation cadence")

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runLearnCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "words-file", &learnWordsFile, fileCfg.Learn.WordsFile)
	applyStringConfig(cmd, "theme", &learnTheme, fileCfg.Learn.Theme)
	applyBoolConfig(cmd, "review", &learnReview, fileCfg.Learn.Review)
	applyStringConfig(cmd, "disguise-style", &learnStyle, fileCfg.Disguise.Style)
	applyBoolConfig(cmd, "disguise-quit", &learnQuit, fileCfg.Disguise.QuitEnabled)
	applyIntConfig(cmd, "debounce-ms", &learnDebounceMs, fileCfg.Disguise.DebounceMs)
	applyIntConfig(cmd, "tick-ms", &learnTickMs, fileCfg.Disguise.TickMs)

	cfg := model.Config{
		WordsPath:      learnWordsFile,
		Theme:          learnTheme,
		ReviewMode:     learnReview,
		DisguiseStyle:  learnStyle,
		DisguiseQuit:   learnQuit,
		DebounceWindow: time.Duration(learnDebounceMs) * time.Millisecond,
		TickInterval:   time.Duration(learnTickMs) * time.Millisecond,
	}
	if fileCfg.Explain.LLMBaseURL != nil {
		cfg.LLMBaseURL = *fileCfg.Explain.LLMBaseURL
	}
	if fileCfg.Explain.LLMModel != nil {
		cfg.LLMModel = *fileCfg.Explain.LLMModel
	}
	if cfg.WordsPath == "" {
		cfg.WordsPath = config.DefaultWordsPath()
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	if _, err := os.Stat(cfg.WordsPath); os.IsNotExist(err) {
		if err := store.WriteSampleCatalog(cfg.WordsPath); err != nil {
			return fmt.Errorf("failed to create sample catalog: %w", err)
		}
		logErrf("Created a sample word catalog at %s\n", cfg.WordsPath)
	}
	catalog, err := store.LoadCatalog(cfg.WordsPath)
	if err != nil {
		return fmt.Errorf("failed to load word catalog: %w", err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	logger, closeLog, err := logging.Open(config.DefaultLogPath())
	if err != nil {
		logErrf("failed to open log file: %v\n", err)
		logger = logging.Discard()
		closeLog = func() {}
	}
	defer closeLog()

	ctx := context.Background()
	progress, err := st.LoadProgress(ctx)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	final, err := tui.Run(catalog, progress, cfg, st, logger)
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := st.SaveProgress(ctx, final); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show learning statistics",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsLast, "last", 10, "number of recent sessions to show")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	progress, err := st.LoadProgress(ctx)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}
	sessions, err := st.ListSessions(ctx, statsLast)
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	lines := stats.SummaryLines(stats.Summarize(progress))
	lines = append(lines, "")
	lines = append(lines, stats.SessionLines(sessions)...)
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), stats.Render(lines)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <word>",
		Short: "Print a word explanation",
		Args:  cobra.ExactArgs(1),
		RunE:  runExplainCmd,
	}
	cmd.Flags().StringVar(&explainBaseURL, "llm-base-url", "", "OpenAI-compatible API base URL")
	cmd.Flags().StringVar(&explainModel, "llm-model", "", "model name")
	return cmd
}

func runExplainCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "llm-base-url", &explainBaseURL, fileCfg.Explain.LLMBaseURL)
	applyStringConfig(cmd, "llm-model", &explainModel, fileCfg.Explain.LLMModel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	text, err := explain.New(explainBaseURL, explainModel).Explain(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to explain %q: %w", args[0], err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range theme.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# vocadrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[learn]
# words-file = ""          # Path to the word catalog CSV
# theme = %q          # Color theme (see: vocadrill themes)
# review = false           # Start in review mode

[disguise]
# style = %q            # tail or ls
# quit-enabled = false     # Allow q to quit from the disguise screen
# debounce-ms = %d        # Input debounce window after dismissal
# tick-ms = %d            # Animation cadence

[explain]
# llm-base-url = ""        # OpenAI-compatible API base URL
# llm-model = ""           # Model name
`,
		defaultTheme,
		defaultStyle,
		defaultDebounceMs,
		defaultTickMs,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.DebounceWindow <= 0 {
		return fmt.Errorf("--debounce-ms must be > 0")
	}
	if cfg.TickInterval <= 0 {
		return fmt.Errorf("--tick-ms must be > 0")
	}
	switch cfg.DisguiseStyle {
	case "tail", "ls", "listing":
	default:
		return fmt.Errorf("--disguise-style must be tail or ls")
	}
	found := false
	for _, name := range theme.Names() {
		if cfg.Theme == name {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("--theme must be one of: %s", strings.Join(theme.Names(), ", "))
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
