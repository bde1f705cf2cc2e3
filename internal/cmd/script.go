package cmd

import (
	"log/slog"

	"github.com/dshills/controlmap/internal/demo"
)

// ScriptCmd runs the viewer with a Lua script layered on the binding
// table. Script bindings win over profile and built-in bindings; hooks
// fire from the reconciled states each tick.
type ScriptCmd struct {
	tickFlags `embed:""`

	Script  string `arg:"" help:"Lua script to load" type:"existingfile"`
	Adapter string `help:"Ingestion adapter to drive" enum:"event,polling,query" default:"event" env:"CONTROLMAP_ADAPTER"`
	Profile string `help:"Binding profile file (TOML, YAML, or JSON); built-ins when omitted" type:"path"`
}

func (c *ScriptCmd) Run(logger *slog.Logger) error {
	if err := requireTerminal(); err != nil {
		return err
	}

	cfg := demo.DefaultConfig()
	cfg.Adapter = demo.Adapter(c.Adapter)
	cfg.FPS = c.FPS
	cfg.Hold = c.Hold
	cfg.Profile = c.Profile
	cfg.Script = c.Script

	app, err := demo.New(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("starting scripted viewer", "script", c.Script, "adapter", cfg.Adapter)
	return app.Run()
}
