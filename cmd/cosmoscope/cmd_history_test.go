package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/universo-sim/cosmoscope/internal/catalog"
)

func TestHistoryCmd_Empty(t *testing.T) {
	base := newBaseDir(t)

	out, _, err := runCommand(t, "history", "--base", base)
	if err != nil {
		t.Fatalf("history error = %v", err)
	}
	if !strings.Contains(out, "No runs recorded") {
		t.Errorf("output = %q, want empty-history message", out)
	}
}

func TestHistoryCmd_ListsRuns(t *testing.T) {
	base := newBaseDir(t)
	writeDataFile(t, base, "landscape_data.csv", reseedCSV)

	if _, _, err := runCommand(t, "adam", "--base", base); err != nil {
		t.Fatalf("adam error = %v", err)
	}

	out, _, err := runCommand(t, "history", "--base", base)
	if err != nil {
		t.Fatalf("history error = %v", err)
	}
	if !strings.Contains(out, "reseed") {
		t.Errorf("output %q should list the reseed run", out)
	}
	if !strings.Contains(out, "0.93") {
		t.Errorf("output %q should show the best fitness", out)
	}
}

func TestHistoryCmd_JSON(t *testing.T) {
	base := newBaseDir(t)
	writeDataFile(t, base, "landscape_data.csv", reseedCSV)

	if _, _, err := runCommand(t, "adam", "--base", base); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCommand(t, "history", "--base", base, "--json")
	if err != nil {
		t.Fatalf("history --json error = %v", err)
	}
	var runs []catalog.Run
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	if len(runs) != 1 || runs[0].Mode != "reseed" {
		t.Errorf("runs = %+v", runs)
	}
}
