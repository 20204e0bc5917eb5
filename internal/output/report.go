package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"spacecraft/internal/config"
	"spacecraft/internal/craft"
)

// Report is the final summary of a run.
type Report struct {
	Initial        craft.Snapshot   `json:"initial" yaml:"initial"`
	Position       craft.Coordinate `json:"position" yaml:"position"`
	Facing         craft.Facing     `json:"facing" yaml:"facing"`
	LastHorizontal craft.Facing     `json:"last_horizontal" yaml:"last_horizontal"`
	Displacement   craft.Coordinate `json:"displacement" yaml:"displacement"`
	Skipped        []craft.Skip     `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

func NewReport(c *craft.Craft, skipped []craft.Skip) Report {
	s := c.State()
	return Report{
		Initial:        c.Initial(),
		Position:       s.Position,
		Facing:         s.Facing,
		LastHorizontal: s.LastHorizontal,
		Displacement:   c.Displacement(),
		Skipped:        skipped,
	}
}

func Write(w io.Writer, format config.Format, r Report) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatText, "":
		return writeText(w, r)
	}
	return fmt.Errorf("unsupported format %q", format)
}

func writeText(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "Craft final position: %s facing %s\n", r.Position, r.Facing); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Started at %s facing %s, moved %s\n",
		r.Initial.Position, r.Initial.Facing, r.Displacement); err != nil {
		return err
	}
	for _, s := range r.Skipped {
		if _, err := fmt.Fprintf(w, "skipped #%d %q\n", s.Index, s.Symbol); err != nil {
			return err
		}
	}
	return nil
}
