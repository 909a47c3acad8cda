package main

import (
	"context"
	"fmt"
	"registry/internal/config"
	"registry/pkg/domain"
	"registry/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand constructs the 'token' subcommand that issues a session token
// for an existing user without checking its password.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issues a session token for the given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			id, _ := cmd.Flags().GetInt64("user-id")

			sessions := getSessions(ctx, cfg)
			if sessions == nil {
				logger.Fatal(ctx, "session.privateKey is required to issue tokens")
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			u, err := strg.UsuarioByID(ctx, domain.UsuarioID(id))
			if err != nil {
				logger.Fatal(ctx, "could not get usuario", zap.Error(err))
			}
			if u == nil {
				logger.Fatal(ctx, "usuario not found", zap.Int64("user_id", id))
			}

			s, token, err := sessions.Issue(u)
			if err != nil {
				logger.Fatal(ctx, "could not issue session token", zap.Error(err))
			}
			logger.Info(ctx, "session issued", zap.Time("expires_at", s.ExpiresAt))

			fmt.Println(token) //nolint: forbidigo
		},
	}

	cmd.Flags().Int64("user-id", 0, "User ID the session is issued for")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
