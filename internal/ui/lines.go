package ui

import (
	"fmt"
	"strings"

	"lifegrid/pkg/core"
)

// Line is one row of the HUD panel.
type Line struct {
	Header bool
	Label  string
	Value  string
}

// Title builds the panel heading for sim.
func Title(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s Parameters", strings.ToUpper(name[:1]), name[1:])
}

// Lines flattens a parameter snapshot into panel rows, one header per group.
func Lines(snap core.ParameterSnapshot) []Line {
	var out []Line
	for _, g := range snap.Groups {
		if len(g.Params) == 0 {
			continue
		}
		out = append(out, Line{Header: true, Label: g.Name})
		for _, p := range g.Params {
			v := p.Value
			if v == "" {
				v = "--"
			}
			out = append(out, Line{Label: p.Label, Value: v})
		}
	}
	return out
}
