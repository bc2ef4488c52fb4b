package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smallsh/internal/config"
	"smallsh/internal/logger"
	"smallsh/internal/shell"
)

var (
	cfgPath string
	oneShot string
)

var rootCmd = &cobra.Command{
	Use:   "smallsh",
	Short: "A small interactive shell with background job control",
	Long: `smallsh reads one command line at a time, runs exit, cd and status
in-process, and launches everything else as a child process. Commands
ending in & run in the background and are reported asynchronously as
they finish.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log, err := logger.New(logger.Config{File: cfg.LogFile, Level: cfg.LogLevel})
		if err != nil {
			// Diagnostics are optional; the shell runs without them.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		s, err := shell.New(cfg, log)
		if err != nil {
			return fmt.Errorf("initialize shell: %w", err)
		}

		if oneShot != "" {
			return s.RunCommand(oneShot)
		}
		return s.Run()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path (default ~/.smallsh.yml)")
	rootCmd.Flags().StringVarP(&oneShot, "command", "c", "", "run a single command line and exit")
}
