package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-rubiks/internal/storage"
)

func TestPrintAllStats(t *testing.T) {
	played := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	stats := map[string]*storage.GameStats{
		"zz_retired": {GameID: "zz_retired", Solves: 1, BestMoves: 40, BestTime: time.Minute, AvgMoves: 40, LastPlayed: played},
		"rubiks":     {GameID: "rubiks", Solves: 3, BestMoves: 22, BestTime: 95 * time.Second, AvgMoves: 30.5, LastPlayed: played},
	}

	var buf bytes.Buffer
	printAllStats(&buf, stats)
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("printAllStats() wrote %d lines, expected 4:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "Rubik's Cube") || !strings.Contains(lines[2], "30.5") {
		t.Errorf("line 3 = %q, expected the rubiks row", lines[2])
	}
	if !strings.Contains(lines[3], "zz_retired") {
		t.Errorf("line 4 = %q, expected the unregistered mode by ID", lines[3])
	}
}

func TestPrintAllStatsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printAllStats(&buf, nil)
	if got := buf.String(); got != "No solves recorded yet.\n" {
		t.Errorf("printAllStats(nil) = %q, expected %q", got, "No solves recorded yet.\n")
	}
}
