package ui

import (
	"slices"
	"testing"

	"langton/internal/core"
)

func TestStatusLinesGroupsAndSkips(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{{Key: "size", Label: "Size", Value: "15"}}},
		{Name: "Run", Params: []core.Parameter{
			{Key: "steps", Label: "Steps", Value: "42"},
			{Key: "paused", Label: "Paused", Value: "true"},
		}},
	}}

	got := statusLines(snap, map[string]bool{"size": true})
	want := []string{"RUN", "Steps: 42", "Paused: true"}
	if !slices.Equal(got, want) {
		t.Fatalf("statusLines = %q, want %q", got, want)
	}

	got = statusLines(snap, nil)
	want = []string{"GRID", "Size: 15", "", "RUN", "Steps: 42", "Paused: true"}
	if !slices.Equal(got, want) {
		t.Fatalf("statusLines = %q, want %q", got, want)
	}
}
