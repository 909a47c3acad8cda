package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"registry/internal/config"
	"registry/internal/facade"
	"registry/pkg/logger"
	"registry/pkg/result"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// printResult writes res as an indented envelope and turns a failure into a
// command error.
func printResult[T any](res result.Result[T]) error {
	out, err := json.MarshalIndent(res.Envelope(), "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode result: %w", err)
	}
	fmt.Println(string(out)) //nolint: forbidigo

	if first, ok := res.FirstError(); ok {
		return fmt.Errorf("operation failed: %s", first)
	}

	return nil
}

func optionalFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)

	return &v
}

// registerCommand constructs the 'register' subcommand that registers a user
// and its default profile in one transaction.
func registerCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "register",
		Short:        "Registers a user together with its profile",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, closeApp := newApp(ctx, cfg)
			defer closeApp()

			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				password = os.Getenv("REGISTRY_PASSWORD")
			}
			email, _ := cmd.Flags().GetString("email")
			name, _ := cmd.Flags().GetString("name")
			surname, _ := cmd.Flags().GetString("surname")

			return printResult(a.auth.RegistrarUsuario(ctx, facade.RegistroRequest{
				Email:           email,
				Password:        password,
				ConfirmPassword: password,
				Name:            name,
				Surname:         surname,
				Phone:           optionalFlag(cmd, "phone"),
				BirthDate:       optionalFlag(cmd, "birth-date"),
			}))
		},
	}

	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("password", "", "Password, read from REGISTRY_PASSWORD when empty")
	cmd.Flags().String("name", "", "First name")
	cmd.Flags().String("surname", "", "Surname")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("birth-date", "", "Birth date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// loginCommand constructs the 'login' subcommand that authenticates a user and
// prints the issued session.
func loginCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "login",
		Short:        "Authenticates a user and prints its session token",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, closeApp := newApp(ctx, cfg)
			defer closeApp()

			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				password = os.Getenv("REGISTRY_PASSWORD")
			}
			logger.Debug(ctx, "logging in", zap.String("email", email))

			return printResult(a.auth.IniciarSesion(ctx, facade.LoginRequest{Email: email, Password: password}))
		},
	}

	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("password", "", "Password, read from REGISTRY_PASSWORD when empty")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
