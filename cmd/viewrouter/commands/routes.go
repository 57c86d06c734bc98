package commands

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/viewrouter/core/logger"
	"github.com/dmitrymomot/viewrouter/core/registry"
	"github.com/dmitrymomot/viewrouter/core/routefile"
)

// newListCmd prints the route table in match priority order.
func newListCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPATH\tVIEW")
			for _, rt := range state.App.Registry().Routes() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", rt.Name(), rt.Path(), rt.Handle())
			}
			return w.Flush()
		},
	}
}

// newResolveCmd resolves a location to its route and parameters.
func newResolveCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve a path to a route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := state.App.Registry().Resolve(args[0])
			if err != nil {
				return err
			}

			state.App.Logger().Debug("location resolved",
				logger.Route(m.Route.Name()),
				logger.Path(args[0]),
				logger.Params(m.Params),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name: %s\n", m.Route.Name())
			fmt.Fprintf(out, "view: %s\n", m.Route.Handle())
			for _, k := range sortedKeys(m.Params) {
				fmt.Fprintf(out, "param %s: %s\n", k, m.Params[k])
			}
			if len(m.Query) > 0 {
				fmt.Fprintf(out, "query: %s\n", m.Query.Encode())
			}
			if m.Fragment != "" {
				fmt.Fprintf(out, "fragment: %s\n", m.Fragment)
			}
			return nil
		},
	}
}

// newReverseCmd builds a location from a route name and key=value params.
func newReverseCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <name> [key=value...]",
		Short: "Build the path of a named route",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			path, err := state.App.Registry().Reverse(args[0], params)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// newCheckCmd validates a route file without loading the app configuration.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "check <file>",
		Short:       "Validate a route file",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipApp": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := routefile.Load(args[0])
			if err != nil {
				return err
			}

			r := registry.New[string](registry.WithBasePath[string](file.Base))
			if err := r.Register(file.Definitions()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d routes ok\n", args[0], r.Len())
			return nil
		},
	}
}

func parseParams(pairs []string) (registry.Params, error) {
	params := make(registry.Params, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid parameter '%s': want key=value", pair)
		}
		params[k] = v
	}
	return params, nil
}

func sortedKeys(params registry.Params) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
