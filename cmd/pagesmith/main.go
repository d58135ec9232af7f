package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mtholden/pagesmith/internal/config"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"pagesmith.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output string `short:"o" help:"Output directory (overrides config)"`
		Cache  bool   `help:"Snapshot loaded docs into the content cache"`
	} `cmd:"" help:"Build the site from the content tree"`

	Watch struct {
		Output string `short:"o" help:"Output directory (overrides config)"`
	} `cmd:"" help:"Rebuild the site whenever the content tree changes"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Write a starter configuration file"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	var err error
	switch ctx.Command() {
	case "build":
		err = runBuildCommand(CLI.Build.Output, CLI.Build.Cache)
	case "watch":
		err = runWatch(CLI.Watch.Output)
	case "init":
		err = config.Default().Write(CLI.Config, CLI.Init.Force)
	default:
		err = fmt.Errorf("unknown command: %s", ctx.Command())
	}
	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func runBuildCommand(outputOverride string, useCache bool) error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	if outputOverride != "" {
		cfg.Output.Dir = outputOverride
	}
	return runBuild(cfg, useCache)
}
