package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/k0ral/rainbox/pkg/buildinfo"
)

// Execute runs the rainbox CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (banner, table,
// view, pan), configures logging based on the --verbose flag, loads the
// optional --theme file, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger and theme are attached to the context and accessible to all
// commands via loggerFromContext and themeFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose   bool
		themePath string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "Rainbox composes rectangular blocks of colored text",
		Long:         `Rainbox is a CLI tool for composing rectangular blocks of colored text: padded banners, aligned tables, and fixed viewports over larger content.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			theme := defaultTheme()
			if themePath != "" {
				t, err := loadTheme(themePath)
				if err != nil {
					return fmt.Errorf("load theme %s: %w", themePath, err)
				}
				theme = t
				loggerFromContext(ctx).Debugf("Loaded theme %s (%d named colors)", themePath, len(t.Colors))
			}
			cmd.SetContext(withTheme(ctx, theme))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n",
		appName, buildinfo.Version, buildinfo.Commit, buildinfo.Date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&themePath, "theme", "", "path to a TOML theme file")

	root.AddCommand(newBannerCmd())
	root.AddCommand(newTableCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newPanCmd())

	return root.ExecuteContext(ctx)
}
