package main

import (
	"os"

	"github.com/spf13/cobra"

	"labclone/internal/appConfig"
	"labclone/internal/cloneCommand"
	"labclone/internal/ext"
	logger "labclone/internal/log"
)

var (
	flags      appConfig.AppConfig
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "labclone",
	Short: "Bulk-clone every GitLab project visible to your account",
	Long: `labclone walks the paginated project listing of a GitLab instance and
mirrors every repository the credentialed account can see into a local
directory tree, one subtree per project namespace.

Already-cloned repositories are left untouched and counted as done.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.InitLogger(verbose)

		var config *appConfig.AppConfig
		var err error
		if configFile != "" {
			config, err = appConfig.Load(configFile)
		} else {
			config, err = appConfig.LoadDefault()
		}
		if err != nil {
			return err
		}
		config.Overlay(flags)
		config.CloneMethod = ext.DefaultValue(config.CloneMethod, "https")
		if err := config.Validate(); err != nil {
			return err
		}
		return cloneCommand.ExecuteCloneCommand(config)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flags.Directory, "directory", "d", "", "clone destination root")
	rootCmd.Flags().StringVar(&flags.URL, "url", "", "GitLab base URL, e.g. https://gitlab.example.com")
	rootCmd.Flags().StringVar(&flags.APIToken, "token", "", "API token, defaults to $"+appConfig.TokenEnvVariableName)
	rootCmd.Flags().StringVar(&flags.CloneMethod, "clone-method", "", "transport, https or ssh (default https)")
	rootCmd.Flags().StringVar(&flags.SSHKeyPath, "ssh-key", "", "private key for ssh clones (default "+appConfig.DefaultSSHKeyPath+")")
	rootCmd.Flags().IntVar(&flags.Workers, "workers", 0, "max concurrent clones (default 16)")
	rootCmd.Flags().IntVar(&flags.RateLimitPerSecond, "rate-limit", 0, "clones started per second, 0 for no limit")
	rootCmd.Flags().StringVar(&configFile, "config", "", "YAML config file (default "+appConfig.DefaultConfigFilePath+")")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "print verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
