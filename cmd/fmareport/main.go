// cmd/fmareport/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/signalnine/fmareport/internal/config"
)

var version = "dev"

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fmareport",
	Short: "Summarize FMA ereports per device",
	Long: `fmareport reads fault management event logs (one JSON object per line),
counts hardware ereports per device path by class and by day, and optionally
annotates each device with data from an hwgrok hardware inventory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return applyFlags(cmd, cfg)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a per-device ereport summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validate(cfg); err != nil {
			return err
		}
		return runReport(cfg, cmd.OutOrStdout(), newLogger(cfg))
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a per-device ereport summary to a SQLite file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validate(cfg); err != nil {
			return err
		}
		if cfg.ExportDB == "" {
			return fmt.Errorf("no database given (--db or export_db)")
		}
		return runExport(cfg, cmd.OutOrStdout(), newLogger(cfg))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().String("fmlog", "", "FMA event log, one JSON event per line")
	rootCmd.PersistentFlags().String("hwgrok", "", "hwgrok hardware inventory (JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "diagnostic level: debug, info, warn, error")

	reportCmd.Flags().String("format", "", "output format: text, json, yaml")
	reportCmd.Flags().Bool("color", false, "color section headers when writing to a terminal")
	exportCmd.Flags().String("db", "", "SQLite file to write the snapshot to")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// applyFlags lets explicitly set flags win over the config file and env
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"fmlog":     &cfg.FMLogPath,
		"hwgrok":    &cfg.HWGrokPath,
		"log-level": &cfg.LogLevel,
		"format":    &cfg.Format,
		"db":        &cfg.ExportDB,
	} {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if flags.Lookup("color") != nil && flags.Changed("color") {
		v, err := flags.GetBool("color")
		if err != nil {
			return err
		}
		cfg.Color = v
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
