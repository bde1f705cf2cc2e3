package cmd

import (
	"log/slog"

	"github.com/dshills/controlmap/internal/demo"
)

// LiveCmd runs the interactive viewer against live terminal input.
type LiveCmd struct {
	tickFlags `embed:""`

	Adapter string `help:"Ingestion adapter to drive" enum:"event,polling,query" default:"event" env:"CONTROLMAP_ADAPTER"`
	Profile string `help:"Binding profile file (TOML, YAML, or JSON); built-ins when omitted" type:"path"`
	Watch   bool   `help:"Reload the profile when it changes on disk"`
}

func (c *LiveCmd) Run(logger *slog.Logger) error {
	if err := requireTerminal(); err != nil {
		return err
	}

	cfg := demo.DefaultConfig()
	cfg.Adapter = demo.Adapter(c.Adapter)
	cfg.FPS = c.FPS
	cfg.Hold = c.Hold
	cfg.Profile = c.Profile
	cfg.Watch = c.Watch

	app, err := demo.New(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting viewer", "adapter", cfg.Adapter, "fps", cfg.FPS)
	return app.Run()
}
