// Package ui draws the viewer's status panel and overlays.
package ui

import (
	"fmt"

	"lifegrid/internal/core"
)

// Status is the driver state shown next to the grid.
type Status struct {
	Generation int
	AliveCount int
	Changed    int
	Frozen     bool
	Paused     bool
	Selecting  bool
}

// Phase names the state the viewer is in.
func (s Status) Phase() string {
	switch {
	case s.Selecting:
		return "selecting"
	case s.Paused:
		return "paused"
	case s.Frozen:
		return "frozen"
	default:
		return "running"
	}
}

// Lines lays out the panel text for a sim: a title, the run status and then
// every parameter group.
func Lines(name string, st Status, snap core.ParameterSnapshot) []string {
	if name == "" {
		name = "sim"
	}
	lines := []string{
		name,
		"",
		fmt.Sprintf("state       %s", st.Phase()),
		fmt.Sprintf("generation  %d", st.Generation),
		fmt.Sprintf("alive       %d", st.AliveCount),
		fmt.Sprintf("changed     %d", st.Changed),
	}
	for _, g := range snap.Groups {
		lines = append(lines, "")
		if g.Summary != "" {
			lines = append(lines, fmt.Sprintf("%s %s", g.Name, g.Summary))
		} else {
			lines = append(lines, g.Name)
		}
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-10s %s", p.Key, p.Value))
		}
	}
	return lines
}
