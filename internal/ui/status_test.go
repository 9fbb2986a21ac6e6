package ui

import (
	"slices"
	"testing"

	"lifegrid/internal/core"
)

func TestStatusPhase(t *testing.T) {
	tests := []struct {
		name string
		st   Status
		want string
	}{
		{"running", Status{}, "running"},
		{"selecting wins", Status{Selecting: true, Paused: true}, "selecting"},
		{"paused", Status{Paused: true, Frozen: true}, "paused"},
		{"frozen", Status{Frozen: true}, "frozen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.st.Phase(); got != tt.want {
				t.Errorf("Phase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{core.IntParam("w", "Width", 10)}},
		{Name: "Rule", Summary: "B3/S23"},
	}}
	got := Lines("life", Status{Generation: 3, AliveCount: 5, Changed: 4}, snap)
	want := []string{
		"life",
		"",
		"state       running",
		"generation  3",
		"alive       5",
		"changed     4",
		"",
		"Grid",
		"  w          10",
		"",
		"Rule B3/S23",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Lines() =\n%q\nwant\n%q", got, want)
	}
	if Lines("", Status{}, core.ParameterSnapshot{})[0] != "sim" {
		t.Error("empty name should fall back to \"sim\"")
	}
}
