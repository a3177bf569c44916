package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/plugset/internal/version"
	"github.com/arthur-debert/plugset/pkg/logging"
)

var (
	verbosity      int
	force          bool
	link           bool
	usePlatformWww bool
	projectDir     string

	rootCmd = &cobra.Command{
		Use:   "plugset",
		Short: MsgRootShort,
		Long: `plugset installs plugin-declared files into an Android project tree and
removes them again, driven by the plugin's manifest. Every copy and removal
is bounded by the plugin and project roots, and uninstall undoes exactly
what install did, empty scaffolding directories included.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(formatError(err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "Overwrite destinations that already exist")
	rootCmd.PersistentFlags().BoolVar(&link, "link", false, "Mirror plugin files with symbolic links instead of copying")
	rootCmd.PersistentFlags().BoolVar(&usePlatformWww, "platform-www", false, "Duplicate web-asset writes into the platform www root")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project", "p", ".", "Android project directory")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: MsgVersionShort,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("plugset version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
