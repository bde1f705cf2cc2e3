package cmd

import (
	"log/slog"

	"github.com/dshills/controlmap/internal/demo"
)

// ReplayCmd records a session and plays it back into a fresh handler.
// Recording captures the logical edge stream, which only the event
// adapter produces, so the adapter is not selectable here.
type ReplayCmd struct {
	tickFlags `embed:""`

	Profile string `help:"Binding profile file (TOML, YAML, or JSON); built-ins when omitted" type:"path"`
}

func (c *ReplayCmd) Run(logger *slog.Logger) error {
	if err := requireTerminal(); err != nil {
		return err
	}

	cfg := demo.DefaultConfig()
	cfg.Adapter = demo.AdapterEvent
	cfg.FPS = c.FPS
	cfg.Hold = c.Hold
	cfg.Profile = c.Profile
	cfg.Record = true

	app, err := demo.New(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting recorder", "fps", cfg.FPS)
	return app.Run()
}
