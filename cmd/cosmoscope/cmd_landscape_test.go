package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/universo-sim/cosmoscope/internal/report"
)

func TestLandscapeCmd_WritesReport(t *testing.T) {
	base := newBaseDir(t)
	writeDataFile(t, base, "landscape_data.csv", `mass_up_quark,mass_down_quark,fitness,winning_gen
1.0e-30,2.0e-30,0.10,1
2.3e-30,4.1e-30,0.93,1
2.5e-30,4.3e-30,0.70,1
3.0e-30,5.0e-30,0.40,2
`)
	writeConfig(t, base, "analysis:\n  target_generation: 1\n  elite_size: 2\n")

	out, _, err := runCommand(t, "landscape", "--base", base)
	if err != nil {
		t.Fatalf("landscape error = %v", err)
	}
	if !strings.Contains(out, "3 of 4") {
		t.Errorf("output should report filtered counts, got %q", out)
	}

	data, err := os.ReadFile(filepath.Join(base, "landscape_report.json"))
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	var r report.Landscape
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatal(err)
	}
	if r.RowsTotal != 4 || r.RowsKept != 3 {
		t.Errorf("counts = %d/%d, want 4/3", r.RowsTotal, r.RowsKept)
	}
	if len(r.Elite) != 2 {
		t.Errorf("elite size = %d, want configured 2", len(r.Elite))
	}
	if r.Best.Fitness != 0.93 {
		t.Errorf("best fitness = %v, want 0.93", r.Best.Fitness)
	}
	// The zoomed view scales by the elite subset's own range
	if r.EliteRange.Min != 0.70 || r.EliteRange.Max != 0.93 {
		t.Errorf("elite range = %+v, want [0.70, 0.93]", r.EliteRange)
	}
}

func TestLandscapeCmd_JSONOutput(t *testing.T) {
	base := newBaseDir(t)
	writeDataFile(t, base, "landscape_data.csv", `mass_up_quark,mass_down_quark,fitness,winning_gen
1.0e-30,2.0e-30,0.10,1
`)

	out, _, err := runCommand(t, "landscape", "--base", base, "--json")
	if err != nil {
		t.Fatalf("landscape --json error = %v", err)
	}
	var r report.Landscape
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("stdout is not a JSON report: %v", err)
	}
	if r.RowsKept != 1 {
		t.Errorf("RowsKept = %d, want 1", r.RowsKept)
	}
}
