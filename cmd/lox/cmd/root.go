package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fattreed/lox/config"
	"github.com/fattreed/lox/internal/logger"
	"github.com/fattreed/lox/repl"
)

// Exit codes, following sysexits.h
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitNoInput  = 66
	usageMessage = "Usage: lox [script]"
)

var errUsage = errors.New(usageMessage)

var (
	cfgFile      string
	outputFormat string
	showAST      bool
	noColor      bool
	plain        bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "Scan and parse lox source",
	Long: `lox prints the tokens of a lox script, or of every line typed at the
prompt when no script is given.

With --ast each ';' separated expression is also parsed and printed as a
tree. Lexical and syntax errors are reported on stderr.`,
	Version:       Version,
	Args:          checkArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps the error returned by Execute to a process exit code. Usage
// and unexpected errors are reported on stderr here.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errUsage):
		printError(rootCmd.ErrOrStderr(), err)
		return ExitUsage
	case errors.Is(err, repl.ErrInvalidSource):
		return ExitDataErr
	case errors.Is(err, repl.ErrReadScript):
		printError(rootCmd.ErrOrStderr(), err)
		return ExitNoInput
	}
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	return ExitFailure
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./lox.toml or ~/.config/lox/config.toml)")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: text or yaml")
	rootCmd.Flags().BoolVar(&showAST, "ast", false, "parse expressions and print their trees")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "read the prompt line by line even on a terminal")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func checkArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errUsage
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	session := repl.NewSession(cfg, log)

	if len(args) == 1 {
		return session.RunFile(args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	return session.Run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// loadConfig reads the configuration file, if any, and applies flags on top
// of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	path := cfgFile
	if path == "" {
		path = config.Discover()
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = outputFormat
	}
	if flags.Changed("ast") {
		cfg.Output.AST = showAST
	}
	if noColor {
		cfg.Output.Color = false
	}
	if plain {
		cfg.REPL.Plain = true
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) (*logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	return logger.New("lox", &logger.Config{
		Level:  level,
		Format: cfg.Log.Format,
		Output: w,
	}), nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, err)
}
