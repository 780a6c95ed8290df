package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/neurohealing-backend/internal/modules/brainmap"
	"github.com/yungbote/neurohealing-backend/internal/modules/healing"
)

type snapshotFile struct {
	Date         string                            `json:"date"`
	BrainImpacts map[string]healing.SnapshotImpact `json:"brain_impacts"`
	Responses    map[string]float64                `json:"responses"`
}

func readAnswers(path string) (brainmap.Answers, error) {
	var answers brainmap.Answers
	if err := decodeFile(path, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func readSnapshots(path string) ([]healing.Snapshot, error) {
	var files []snapshotFile
	if err := decodeFile(path, &files); err != nil {
		return nil, err
	}
	out := make([]healing.Snapshot, 0, len(files))
	for i, f := range files {
		date, err := parseDate(f.Date)
		if err != nil {
			return nil, fmt.Errorf("snapshot %d: %w", i, err)
		}
		out = append(out, healing.Snapshot{Date: date, BrainImpacts: f.BrainImpacts, Responses: f.Responses})
	}
	return out, nil
}

// decodeFile reads JSON, or YAML for .yaml/.yml files. YAML is converted
// through JSON so the json tags and custom unmarshalers apply to both.
func decodeFile(path string, target any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var generic any
		if err := yaml.Unmarshal(raw, &generic); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		raw, err = json.Marshal(generic)
		if err != nil {
			return fmt.Errorf("convert %s: %w", path, err)
		}
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}
