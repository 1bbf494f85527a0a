// Command ssemock plays scripted event streams against mock event sources
// and logs what a consumer would observe.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/ssemock/bootstrap"
	"github.com/kbukum/ssemock/config"
	"github.com/kbukum/ssemock/eventsource"
	"github.com/kbukum/ssemock/logger"
	"github.com/kbukum/ssemock/version"
)

func main() {
	var (
		configFile  string
		envFile     string
		showVersion bool
	)
	pflag.StringVarP(&configFile, "config", "c", "", "Config file (default: cmd/ssemock/config.yml or ./config.yml)")
	pflag.StringVar(&envFile, "env-file", "", "Env file loaded before the config")
	pflag.BoolVar(&showVersion, "version", false, "Print version information and exit")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ssemock [flags] [script.yml ...]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if showVersion {
		fmt.Println(version.Get().String())
		return
	}

	if err := run(context.Background(), configFile, envFile, pflag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "ssemock: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configFile, envFile string, scripts []string) error {
	var opts []config.LoaderOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if envFile != "" {
		opts = append(opts, config.WithEnvFile(envFile))
	}

	var cfg CLIConfig
	if err := config.LoadConfig("ssemock", &cfg, opts...); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if len(scripts) > 0 {
		cfg.Scripts = scripts
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		return err
	}
	logger.RegisterDefaults("eventsource", "script", "ssemock")

	sources := eventsource.NewComponent(nil)
	if err := app.RegisterComponent(sources); err != nil {
		return err
	}

	return app.RunTask(ctx, func(ctx context.Context) error {
		return playAll(ctx, sources.Registry(), cfg.Defaults, cfg.Scripts)
	})
}
