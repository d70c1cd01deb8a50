package jrnlcmd

import (
	"github.com/spf13/cobra"

	"github.com/tasleson/sdjournal/internal/config"
	"github.com/tasleson/sdjournal/pkg/log"
)

// New builds the jrnl root command. Configuration is resolved in layers:
// built-in defaults, then an optional JSON config file, then SDJOURNAL_*
// environment variables, then flags.
func New(logger *log.Logger) *cobra.Command {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:           "jrnl",
		Short:         "Read, follow, filter and write systemd journal entries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var configPath string
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().String("scope", "", "Journal scope: local|system|user|runtime")
	rootCmd.PersistentFlags().String("directory", "", "Read journal files from this directory")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		config.FromEnv(&cfg)
		if v, _ := cmd.Flags().GetString("scope"); v != "" {
			cfg.Scope = v
		}
		if v, _ := cmd.Flags().GetString("directory"); v != "" {
			cfg.Directory = v
		}
		if lv, err := log.ParseLevel(cfg.LogLevel); err == nil {
			logger.SetLevel(lv)
		}
		return nil
	}

	rootCmd.AddCommand(newReadCommand(&cfg, logger))
	rootCmd.AddCommand(newFollowCommand(&cfg, logger))
	rootCmd.AddCommand(newWriteCommand(&cfg))
	rootCmd.AddCommand(newFieldsCommand(&cfg))
	rootCmd.AddCommand(newServeCommand(&cfg, logger))
	return rootCmd
}
