// Package main provides the CLI entrypoint of the registry.
// It wires subcommands (migrate, serve, worker, register, login, token),
// loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"registry/internal/config"
	"registry/pkg/logger"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "registry",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	configPath := flags.String("c", "config.yml", "The config file path")
	_ = flags.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		workerCommand(cfg),
		registerCommand(cfg),
		loginCommand(cfg),
		tokenCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs keeps only the -c/--config flag of args so that the standard
// flag package does not choke on subcommand flags.
func configArgs(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "-c" || a == "--config":
			if i+1 < len(args) {
				out = append(out, "-c", args[i+1])
				i++
			}
		case strings.HasPrefix(a, "-c="):
			out = append(out, a)
		case strings.HasPrefix(a, "--config="):
			out = append(out, "-c="+strings.TrimPrefix(a, "--config="))
		}
	}

	return out
}
