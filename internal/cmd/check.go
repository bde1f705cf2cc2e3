package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/dshills/controlmap/internal/profile"
)

// CheckCmd validates a profile file and prints the binding table it
// flattens to, without entering the terminal viewer.
type CheckCmd struct {
	File string `arg:"" help:"Profile file to validate" type:"existingfile"`
}

func (c *CheckCmd) Run(logger *slog.Logger) error {
	prof, err := profile.LoadFile(c.File)
	if err != nil {
		return err
	}

	pairs := prof.Pairs()
	logger.Info("profile is valid",
		"name", prof.Name,
		"controls", len(prof.Controls),
		"bindings", len(pairs))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INPUT\tCONTROL")
	for _, p := range pairs {
		fmt.Fprintf(w, "%s\t%s\n", p.Input, p.Control)
	}
	return w.Flush()
}
