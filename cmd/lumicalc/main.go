// Package main provides the CLI entrypoint for lumicalc.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/lumicalc/internal/calc"
	"github.com/verte-zerg/lumicalc/internal/config"
	"github.com/verte-zerg/lumicalc/internal/i18n"
	"github.com/verte-zerg/lumicalc/internal/logging"
	"github.com/verte-zerg/lumicalc/internal/mcpserver"
	"github.com/verte-zerg/lumicalc/internal/model"
	"github.com/verte-zerg/lumicalc/internal/trace"
	"github.com/verte-zerg/lumicalc/internal/tui"
)

const (
	appName      = "lumicalc"
	defaultLang  = "en"
	defaultMouse = true
)

var version = "dev"

var (
	uiLang     string
	uiMouse    bool
	logLevel   string
	logFile    string
	pressTrace bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Keypad calculator for the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runKeypadCmd,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file for the keypad UI (default: no logging)")
	rootCmd.Flags().StringVar(&uiLang, "lang", defaultLang, "UI language ("+strings.Join(i18n.Languages(), ", ")+")")
	rootCmd.Flags().BoolVar(&uiMouse, "mouse", defaultMouse, "enable mouse clicks on the keypad")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPressCmd())
	rootCmd.AddCommand(newMCPCmd())

	return rootCmd
}

func runKeypadCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("stdout is not a terminal; use `%s press <buttons>` for scripted input", appName)
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	loc, err := i18n.New(cfg.Lang)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	logger.Info("starting keypad", "lang", cfg.Lang, "mouse", cfg.Mouse)
	program := tea.NewProgram(tui.NewModel(loc, logger), opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &uiLang, fileCfg.UI.Lang)
	applyBoolConfig(cmd, "mouse", &uiMouse, fileCfg.UI.Mouse)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)

	cfg := model.Config{
		Lang:     uiLang,
		Mouse:    uiMouse,
		LogLevel: logLevel,
		LogFile:  logFile,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}
	editor, err := editorCommand(path)
	if err != nil {
		return err
	}
	editor.Stdin = cmd.InOrStdin()
	editor.Stdout = cmd.OutOrStdout()
	editor.Stderr = cmd.ErrOrStderr()
	if err := editor.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented template unless path already exists.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	if _, err := io.WriteString(f, defaultConfigTemplate()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write config: %w", err)
	}
	return f.Close()
}

// editorCommand opens path in $VISUAL or $EDITOR, falling back to vi.
func editorCommand(path string) (*exec.Cmd, error) {
	editor := strings.TrimSpace(os.Getenv("VISUAL"))
	if editor == "" {
		editor = strings.TrimSpace(os.Getenv("EDITOR"))
	}
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}
	return exec.Command(parts[0], append(parts[1:], path)...), nil
}

func newPressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "press <button>...",
		Short: "Press buttons and print the display",
		Long: "Press keypad buttons in order starting from a cleared calculator and print the display.\n" +
			"Buttons: 0-9 . AC +/- % + - × ÷ = (aliases: * x /).",
		Example: "  lumicalc press 7 + 3 =\n  lumicalc press --trace 4 + 5 + 6 =",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runPressCmd,
	}
	cmd.Flags().BoolVar(&pressTrace, "trace", false, "print the state after every press")
	return cmd
}

func runPressCmd(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(cmd.ErrOrStderr(), logLevel)
	if err != nil {
		return err
	}
	labels := splitLabels(args)
	steps, err := trace.Record(labels)
	if err != nil {
		return fmt.Errorf("failed to press buttons: %w", err)
	}
	logger.Debug("pressed buttons", "count", len(steps))

	out := cmd.OutOrStdout()
	if pressTrace {
		return writeLines(out, trace.Lines(steps))
	}
	final := calc.Default()
	if len(steps) > 0 {
		final = steps[len(steps)-1].State
	}
	return writeLines(out, []string{final.Screen().Value})
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the calculator as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE:  runMCPCmd,
	}
}

func runMCPCmd(cmd *cobra.Command, _ []string) error {
	// stdout carries the protocol, so logs go to stderr.
	logger, err := logging.New(cmd.ErrOrStderr(), logLevel)
	if err != nil {
		return err
	}
	return mcpserver.New(appName, version, logger).Serve()
}

// splitLabels accepts both "7 + 3 =" as one argument and as separate ones.
func splitLabels(args []string) []string {
	labels := make([]string, 0, len(args))
	for _, arg := range args {
		labels = append(labels, strings.Fields(arg)...)
	}
	return labels
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
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
	return fmt.Sprintf(`# lumicalc configuration
# Uncomment a value to enable it. CLI flags override config values.

[ui]
# lang = %q             # UI language (%s)
# mouse = %t            # Enable mouse clicks on the keypad

[log]
# level = %q          # debug, info, warn, error
# file = %q
`,
		defaultLang,
		strings.Join(i18n.Languages(), ", "),
		defaultMouse,
		logging.DefaultLevel,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if !slices.Contains(i18n.Languages(), cfg.Lang) {
		return fmt.Errorf("--lang must be one of: %s", strings.Join(i18n.Languages(), ", "))
	}
	if _, err := logging.New(io.Discard, cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
