package commands

import (
	"fmt"

	"bazaar/internal/domain/entity"

	"github.com/spf13/cobra"
)

func roleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Inspect role resolution",
	}
	cmd.AddCommand(roleResolveCmd())

	return cmd
}

func roleResolveCmd() *cobra.Command {
	var (
		userType string
		hasStore bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a raw backend user type to a role",
		RunE: func(cmd *cobra.Command, args []string) error {
			check := entity.CheckUserType(userType, hasStore)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), check)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "role:           %s\n", check.Role)
			fmt.Fprintf(out, "is_customer:    %t\n", check.IsCustomer)
			fmt.Fprintf(out, "is_store_owner: %t\n", check.IsStoreOwner)
			fmt.Fprintf(out, "is_admin:       %t\n", check.IsAdmin)

			return nil
		},
	}

	cmd.Flags().StringVar(&userType, "type", "", "raw user type as reported by the backend")
	cmd.Flags().BoolVar(&hasStore, "has-store", false, "the user owns a store")

	return cmd
}
