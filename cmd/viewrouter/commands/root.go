package commands

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/viewrouter/app/admin"
)

// cliState holds the shared runtime state for the commands.
type cliState struct {
	App        *admin.App
	routesFile string
	newApp     func(opts ...admin.AppOption) (*admin.App, error)
}

// NewRootCmd creates the entire command tree and returns the root command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(admin.NewApp)
}

func newRootCmd(newApp func(opts ...admin.AppOption) (*admin.App, error)) *cobra.Command {
	state := &cliState{newApp: newApp}

	rootCmd := &cobra.Command{
		Use:          "viewrouter",
		Short:        "Admin view route table",
		Long:         `Resolve and reverse the admin interface's client-side routes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["skipApp"] == "true" {
				return nil
			}

			opts := []admin.AppOption{admin.WithOutput(cmd.ErrOrStderr())}
			if state.routesFile != "" {
				opts = append(opts, admin.WithRoutesFile(state.routesFile))
			}

			app, err := state.newApp(opts...)
			if err != nil {
				return err
			}
			state.App = app
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&state.routesFile, "routes", "r", "", "route file (yaml, toml or json); overrides ROUTES_FILE")

	rootCmd.AddCommand(newListCmd(state))
	rootCmd.AddCommand(newResolveCmd(state))
	rootCmd.AddCommand(newReverseCmd(state))
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}
