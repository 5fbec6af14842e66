package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/ranking"
)

// loadRecord reads a source record from path. JSON files decode to their
// value; any other content is used as plain text.
func loadRecord(path string) (any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var record any
		if err := json.Unmarshal(content, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record JSON %s: %w", path, err)
		}
		return record, nil
	}
	return string(content), nil
}

// loadCandidates reads candidates from a directory (one record per .json/.txt
// file, id = file name without extension) or from a JSON file holding either a
// list of {"id", "record"} objects or an object keyed by id.
func loadCandidates(path string) ([]ranking.Candidate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat candidates %s: %w", path, err)
	}

	if info.IsDir() {
		return loadCandidateDir(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	var list []ranking.Candidate
	if err := json.Unmarshal(content, &list); err == nil {
		for i, c := range list {
			if c.ID == "" {
				return nil, fmt.Errorf("candidate %d in %s has no id", i, path)
			}
		}
		return list, nil
	}

	var byID map[string]any
	if err := json.Unmarshal(content, &byID); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidates JSON %s: expected a list or an object keyed by id", path)
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	candidates := make([]ranking.Candidate, 0, len(ids))
	for _, id := range ids {
		candidates = append(candidates, ranking.Candidate{ID: id, Record: byID[id]})
	}
	return candidates, nil
}

func loadCandidateDir(dir string) ([]ranking.Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates directory %s: %w", dir, err)
	}

	var candidates []ranking.Candidate
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".json" && ext != ".txt") {
			continue
		}
		record, err := loadRecord(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, ranking.Candidate{
			ID:     strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Record: record,
		})
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("no .json or .txt candidate files in %s", dir)
	}
	return candidates, nil
}

// writeJSON writes v as indented JSON to path, or to stdout when path is empty.
func writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, string(jsonOutput))
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
