package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/dshills/controlmap/internal/cmd"
)

func main() {
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("controlmap"),
		kong.Description("Interactive viewer for input-to-control binding state."),
		kong.UsageOnError(),
		// Flags and environment override values loaded from these files.
		kong.Configuration(kongtoml.Loader, "controlmap.toml", "~/.config/controlmap/config.toml"),
		kong.Configuration(kongyaml.Loader, "controlmap.yaml", "~/.config/controlmap/config.yaml"),
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cli.LogLevel),
	}))
	ctx.Bind(logger)
	ctx.FatalIfErrorf(ctx.Run())
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
