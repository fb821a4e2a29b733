package cli

import (
	"fmt"
	"time"

	"timeline-lab/auth"

	"github.com/spf13/cobra"
)

// TokenOptions holds flags for the token command.
type TokenOptions struct {
	*RootOptions
	TTL time.Duration
}

// NewTokenCommand mints a token for an actor of the directory. It needs the
// secret of the master.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TokenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "token <actor-ref>",
		Short: "Mint a bearer token for an actor",
		Long: `Mint a bearer token for an actor of the directory.

The secret is read from TIMELINE_JWT_SECRET and must match the JWT_SECRET
of the master.

Example:
  export TIMELINE_TOKEN=$(timelinectl token alice --ttl 18h)`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := auth.NewTokenManager(opts.JWTSecret)
			if err != nil {
				return err
			}
			token, err := tokens.GenerateToken(args[0], opts.TTL)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&opts.TTL, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
