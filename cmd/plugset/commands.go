package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/plugset/pkg/config"
	"github.com/arthur-debert/plugset/pkg/handlers"
	"github.com/arthur-debert/plugset/pkg/manifest"
	"github.com/arthur-debert/plugset/pkg/project"
	"github.com/arthur-debert/plugset/pkg/types"
)

var installCmd = &cobra.Command{
	Use:   "install <plugin-dir>",
	Short: MsgInstallShort,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDirectives(args[0], false)
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <plugin-dir>",
	Short: MsgUninstallShort,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDirectives(args[0], true)
	},
}

// runDirectives drives the handler table over every directive in the
// plugin's manifest, in manifest order. Unsupported kinds are skipped with a
// notice; the first failing directive aborts the run, leaving earlier
// mutations in place.
func runDirectives(pluginDir string, uninstall bool) error {
	projDir, err := filepath.Abs(projectDir)
	if err != nil {
		return err
	}
	plugDir, err := filepath.Abs(pluginDir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(projDir)
	if err != nil {
		return err
	}
	opts := mergeOptions(cfg)

	proj := project.New(projDir)
	if cfg.Dirs.Www != "" {
		proj.Www = filepath.Join(projDir, cfg.Dirs.Www)
	}
	if cfg.Dirs.PlatformWww != "" {
		proj.PlatformWww = filepath.Join(projDir, cfg.Dirs.PlatformWww)
	}

	m, err := manifest.Load(plugDir)
	if err != nil {
		return err
	}

	reg := handlers.NewDefaultRegistry()
	applied, skipped := 0, 0
	for _, d := range m.Directives {
		var fn handlers.HandlerFunc
		if uninstall {
			fn = reg.GetUninstaller(d.Kind)
		} else {
			fn = reg.GetInstaller(d.Kind)
		}
		if fn == nil {
			fmt.Printf(MsgSkippedFormat, d.Kind)
			skipped++
			continue
		}
		if err := fn(d, m.Plugin, proj, opts); err != nil {
			return err
		}
		applied++
	}

	format := MsgInstalledFormat
	if uninstall {
		format = MsgUninstalledFormat
	}
	fmt.Printf(format, formatBold(m.Plugin.ID), applied, skipped)
	return nil
}

// mergeOptions layers the command-line switches over the project config
// defaults. Flags only turn options on; the config file cannot be negated
// from the command line.
func mergeOptions(cfg config.Config) types.Options {
	opts := cfg.Options()
	if force {
		opts.Force = true
	}
	if link {
		opts.Link = true
	}
	if usePlatformWww {
		opts.UsePlatformWww = true
	}
	return opts
}
