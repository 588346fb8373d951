package commands

import (
	"fmt"

	"bazaar/internal/infra/auth"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// hashKeyCmd prints the bcrypt hash to configure as admin.breakGlassKeyHash.
func hashKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-key <key>",
		Short: "Hash a break-glass admin key for the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.NewBcryptHasher().Hash(args[0])
			if err != nil {
				return errors.Wrap(err, "hash key")
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)

			return nil
		},
	}
}
