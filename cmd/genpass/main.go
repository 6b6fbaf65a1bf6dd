// Package main provides the CLI entrypoint for genpass.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/genpass/internal/clipboard"
	"github.com/verte-zerg/genpass/internal/config"
	"github.com/verte-zerg/genpass/internal/generator"
	"github.com/verte-zerg/genpass/internal/model"
	"github.com/verte-zerg/genpass/internal/tui"
)

var (
	generateLetters   int
	generateUppercase int
	generateSymbols   int
	generateNumbers   int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "genpass",
		Short:         "TUI password generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGenerateCmd,
	}

	rootCmd.Flags().IntVar(&generateLetters, "letters", model.DefaultLetters, "lowercase letters per password")
	rootCmd.Flags().IntVar(&generateUppercase, "uppercase", model.DefaultUppercase, "uppercase letters per password")
	rootCmd.Flags().IntVar(&generateSymbols, "symbols", model.DefaultSymbols, "symbols per password")
	rootCmd.Flags().IntVar(&generateNumbers, "numbers", model.DefaultNumbers, "digits per password")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "letters", &generateLetters, fileCfg.Generate.Letters)
	applyIntConfig(cmd, "uppercase", &generateUppercase, fileCfg.Generate.Uppercase)
	applyIntConfig(cmd, "symbols", &generateSymbols, fileCfg.Generate.Symbols)
	applyIntConfig(cmd, "numbers", &generateNumbers, fileCfg.Generate.Numbers)

	cfg := model.Config{
		Letters:   generateLetters,
		Uppercase: generateUppercase,
		Symbols:   generateSymbols,
		Numbers:   generateNumbers,
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("genpass needs an interactive terminal")
	}

	m := tui.NewModel(cfg, generator.New(), clipboard.New())
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
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

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# genpass configuration
# Uncomment a value to enable it. CLI flags override config values.

[generate]
# letters = %d     # Lowercase letters per password
# uppercase = %d   # Uppercase letters per password
# symbols = %d     # Symbols per password
# numbers = %d     # Digits per password
`,
		model.DefaultLetters,
		model.DefaultUppercase,
		model.DefaultSymbols,
		model.DefaultNumbers,
	)
}

func validateConfig(cfg model.Config) error {
	for name, value := range map[string]int{
		"letters":   cfg.Letters,
		"uppercase": cfg.Uppercase,
		"symbols":   cfg.Symbols,
		"numbers":   cfg.Numbers,
	} {
		if value < model.MinValue || value > model.MaxValue {
			return fmt.Errorf("--%s must be between %d and %d", name, model.MinValue, model.MaxValue)
		}
	}
	return nil
}
