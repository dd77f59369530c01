package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dzjyyds666/inifix/pkg/config"
	"github.com/dzjyyds666/inifix/pkg/logging"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "v0.1 -- HEAD"

type RootParams struct {
	LogLevel string // 日志级别
	Config   string // 配置文件路径
}

var rootParams = &RootParams{}

var (
	settings *config.Config
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "inifix",
	Short: "inifix reads, validates and formats simulation parameter files.",
	Long: "inifix is a tool for parameter files used by simulation codes such as Idefix and Pluto. " +
		"It can validate them, reformat them into aligned columns, and query or convert their content.",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// exitCode lets a command pick the process exit status without printing an
// error; the command has already reported on stderr.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit status %d", int(c)) }

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the configuration file and builds the logger. Flags given on
// the command line win over the file.
func setup(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Discover(rootParams.Config, wd)
	if err != nil {
		return err
	}
	level := rootParams.LogLevel
	if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	settings = cfg
	logger = logging.NewLogger(logging.LoggerConfig{Level: level}, cmd.ErrOrStderr())
	logger.Debug("configuration loaded", "config", rootParams.Config, "log_level", level)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of inifix",
	Long:  `All software has versions. This is inifix's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "inifix", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootParams.LogLevel, "log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&rootParams.Config, "config", "", "configuration file (default ./"+config.DefaultFile+" when present)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(queryCmd)
}
