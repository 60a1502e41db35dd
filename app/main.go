package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RubyLLL/ysh/internal/config"
	"github.com/RubyLLL/ysh/internal/keyboard"
	ylog "github.com/RubyLLL/ysh/internal/log"
	"github.com/RubyLLL/ysh/internal/shell"
)

var (
	historyFile string
	aliasFile   string
	logFile     string
	plainMode   bool
)

var rootCmd = &cobra.Command{
	Use:          "ysh",
	Short:        "An interactive shell with history, aliases and tab completion",
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&historyFile, "history-file", config.HistoryPath(), "history file location")
	rootCmd.Flags().StringVar(&aliasFile, "alias-file", config.AliasPath(), "alias config file location")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "debug log file (logging disabled when empty)")
	rootCmd.Flags().BoolVar(&plainMode, "plain", false, "line mode without per-keystroke handling")
}

func run(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := ylog.New(logFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	aliases, err := config.LoadAliases(aliasFile)
	if err != nil {
		return fmt.Errorf("loading aliases: %w", err)
	}

	hist := shell.NewHistory(historyFile)
	if err := hist.Load(); err != nil {
		logger.Warn().Err(err).Msg("loading history")
	}

	finder := shell.NewPathFinder()
	index := shell.NewCommandIndex(finder.Executables(), aliases)
	dispatcher := shell.NewDispatcher(aliases, hist, shell.OSExecutor{Finder: finder}, os.Stdout, logger)

	ctx := cmd.Context()
	if plainMode {
		return shell.NewPlainSession(dispatcher, hist, index, shell.Prompt, logger).Run(ctx)
	}

	keys, err := keyboard.New(os.Stdin)
	if err != nil {
		if errors.Is(err, keyboard.ErrNotTerminal) {
			logger.Debug().Msg("stdin is not a terminal, using plain mode")
			return shell.NewPlainSession(dispatcher, hist, index, shell.Prompt, logger).Run(ctx)
		}
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer keys.Stop()

	session := shell.NewSession(hist, index, dispatcher, shell.NewRenderer(os.Stdout, shell.Prompt), logger)
	return session.Run(ctx, keys)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
