package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("brainmapctl %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

const answersYAML = `
physical_abuse:
  experienced: yes
  age_ranges: ["0-3"]
  duration: ongoing
emotional_neglect:
  experienced: "no"
protective:
  experienced: true
`

func TestScoreFromYAML(t *testing.T) {
	path := writeFile(t, "answers.yaml", answersYAML)
	out := run(t, "score", path, "--sex", "female", "--recommend")

	var res struct {
		Impacts map[string]struct {
			Impact float64 `json:"impact"`
		} `json:"impacts"`
		Summary struct {
			TotalACEs         int  `json:"total_aces"`
			ProtectiveFactors bool `json:"protective_factors"`
		} `json:"summary"`
		Recommendations []json.RawMessage `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if res.Summary.TotalACEs != 1 || !res.Summary.ProtectiveFactors {
		t.Fatalf("summary=%+v", res.Summary)
	}
	if got := res.Impacts["Amygdala"].Impact; got <= 0 || got > 1 {
		t.Fatalf("amygdala=%v want within (0, 1]", got)
	}
	if len(res.Recommendations) == 0 {
		t.Fatalf("missing recommendations")
	}
}

func TestAggregateFromJSON(t *testing.T) {
	path := writeFile(t, "history.json", `[
		{"date": "2024-01-01", "brain_impacts": {"hippocampus": {"severity": 0.8}}},
		{"date": "2025-01-01T00:00:00Z", "brain_impacts": {"Hippocampus": {"severity": 0.6}}}
	]`)
	out := run(t, "aggregate", path, "--factors", "therapy")
	var m struct {
		SnapshotCount      int               `json:"snapshot_count"`
		OverallProgress    float64           `json:"overall_progress"`
		RecentAchievements []json.RawMessage `json:"recent_achievements"`
	}
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if m.SnapshotCount != 2 || m.OverallProgress <= 0.1 || len(m.RecentAchievements) != 1 {
		t.Fatalf("metrics=%+v", m)
	}
}

func TestTimelineYAMLOutput(t *testing.T) {
	path := writeFile(t, "history.yml", `
- date: 2024-01-01
  brain_impacts:
    amygdala: {severity: 0.9}
- date: 2024-06-01
  brain_impacts:
    amygdala: {severity: 0.7}
`)
	out := run(t, "timeline", path, "--format", "yaml")
	if !strings.Contains(out, "most_improved:") || !strings.Contains(out, "Amygdala") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestCatalogAndChart(t *testing.T) {
	out := run(t, "catalog")
	if !strings.Contains(out, "physical_abuse") {
		t.Fatalf("catalog missing categories:\n%s", out)
	}

	answers := writeFile(t, "answers.yaml", answersYAML)
	png := filepath.Join(t.TempDir(), "impact.png")
	run(t, "chart", answers, "-o", png)
	info, err := os.Stat(png)
	if err != nil || info.Size() == 0 {
		t.Fatalf("chart not written: %v", err)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := parseDate("yesterday"); err == nil {
		t.Fatalf("expected error")
	}
	d, err := parseDate("")
	if err != nil || !d.IsZero() {
		t.Fatalf("empty date: %v %v", d, err)
	}
}
