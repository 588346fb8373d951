package commands

import (
	"fmt"

	"bazaar/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type dashboardOutput struct {
	Role      entity.Role           `json:"role"`
	Tabs      []entity.DashboardTab `json:"tabs"`
	Menu      []entity.MenuItem     `json:"menu"`
	HomeRoute string                `json:"home_route"`
}

func dashboardCmd() *cobra.Command {
	var rawRole string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the tabs, menu and home route offered to a role",
		RunE: func(cmd *cobra.Command, args []string) error {
			role, ok := entity.ParseRole(rawRole)
			if !ok {
				return errors.Errorf("unknown role %q", rawRole)
			}

			output := dashboardOutput{
				Role:      role,
				Tabs:      entity.DashboardTabs(role),
				Menu:      entity.MenuItems(role),
				HomeRoute: entity.HomeRoute(role),
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), output)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "role: %s\nhome: %s\n\ntabs:\n", output.Role, output.HomeRoute)
			for _, tab := range output.Tabs {
				fmt.Fprintf(out, "  %-14s %-20s %s\n", tab.Key, tab.Label, tab.Path)
			}
			fmt.Fprintln(out, "\nmenu:")
			for _, item := range output.Menu {
				fmt.Fprintf(out, "  %-14s %-20s %s\n", item.Key, item.Label, item.Path)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&rawRole, "role", "", "customer, store_owner or admin")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}
