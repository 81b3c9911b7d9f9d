package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jimaku/internal/logging"
	"jimaku/internal/runs"
	"jimaku/internal/srt"
	"jimaku/internal/testsupport"
)

func TestResolveOutputPathDefaultsNextToInput(t *testing.T) {
	got, err := resolveOutputPath("/data/episode1_timing.json", "")
	if err != nil {
		t.Fatalf("resolveOutputPath: %v", err)
	}
	if got != "/data/episode1_timing.srt" {
		t.Fatalf("default output path: got %s", got)
	}
}

func TestResolveOutputPathHonorsFlag(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.srt")
	got, err := resolveOutputPath("/data/timing.json", want)
	if err != nil {
		t.Fatalf("resolveOutputPath: %v", err)
	}
	if got != want {
		t.Fatalf("output path: got %s, want %s", got, want)
	}
}

func TestRunSegmentationWritesArtifacts(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	input := testsupport.WriteTimingFile(t,
		testsupport.NewTimingSection(1, "今日はいい天気です。明日は雨かもしれません。", 0.2, 0),
	)
	srtPath := filepath.Join(t.TempDir(), "out", "episode.srt")

	cues, err := runSegmentation(cfg, logging.NewNop(), input, srtPath, true)
	if err != nil {
		t.Fatalf("runSegmentation: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("cue count: got %d, want 2", len(cues))
	}

	content, err := os.ReadFile(srtPath)
	if err != nil {
		t.Fatalf("read srt: %v", err)
	}
	if issues := srt.Validate(string(content)); len(issues) != 0 {
		t.Fatalf("written srt has issues: %v", issues)
	}
	if !strings.Contains(string(content), "今日はいい天気です") {
		t.Fatalf("srt content: %q", content)
	}

	timingPath := strings.TrimSuffix(srtPath, ".srt") + "_timing.json"
	if _, err := os.Stat(timingPath); err != nil {
		t.Fatalf("timing json missing: %v", err)
	}
}

func TestRunSegmentationMissingInput(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	_, err := runSegmentation(cfg, logging.NewNop(), filepath.Join(t.TempDir(), "missing.json"), filepath.Join(t.TempDir(), "out.srt"), false)
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestRecordRunPersistsOutcome(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := recordRun(context.Background(), cfg, "/in.json", "/out.srt", nil, os.ErrPermission); err != nil {
		t.Fatalf("recordRun: %v", err)
	}

	dbPath, err := cfg.RunsDBPath()
	if err != nil {
		t.Fatalf("RunsDBPath: %v", err)
	}
	store, err := runs.Open(dbPath)
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	defer store.Close()

	list, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("run count: got %d, want 1", len(list))
	}
	if list[0].Status != runs.StatusFailed {
		t.Fatalf("status: got %q, want failed", list[0].Status)
	}
}
