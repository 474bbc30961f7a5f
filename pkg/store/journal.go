// Package store keeps a copy of the tracker lists on disk between runlog
// invocations.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/tracker"
)

// Snapshot holds every tracker list in insertion order.
type Snapshot struct {
	Goals          []entry.Goal
	Runs           []entry.Run
	CompletedGoals []entry.CompletedGoal
	HistoryRuns    []entry.Run
}

// Journal defines the persistence contract for tracker lists. Each list is
// written whole under its own key.
type Journal interface {
	Load(ctx context.Context) (Snapshot, error)
	Write(list tracker.StoreID, items any) error
	Location() string
}

// Open creates a Journal backed by diskv using the provided config.
func Open(cfg Config) (Journal, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &journal{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      filepath.Join(basePath, ".tmp"),
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type journal struct {
	d        *diskv.Diskv
	basePath string
}

func (j *journal) Location() string {
	return j.basePath
}

func (j *journal) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	lists := []struct {
		id     tracker.StoreID
		target any
	}{
		{tracker.StoreGoals, &snap.Goals},
		{tracker.StoreRuns, &snap.Runs},
		{tracker.StoreCompletedGoals, &snap.CompletedGoals},
		{tracker.StoreHistoryRuns, &snap.HistoryRuns},
	}
	for _, l := range lists {
		if err := ctx.Err(); err != nil {
			return Snapshot{}, err
		}
		if err := j.read(l.id, l.target); err != nil {
			return Snapshot{}, err
		}
	}
	return snap, nil
}

func (j *journal) read(id tracker.StoreID, target any) error {
	key := string(id)
	if !j.d.Has(key) {
		return nil
	}
	val, err := j.d.Read(key)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	if len(val) == 0 {
		return nil
	}
	if err := json.Unmarshal(val, target); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

func (j *journal) Write(id tracker.StoreID, items any) error {
	key := string(id)
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := j.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	slog.Debug("journal written", "list", key, "bytes", len(data))
	return nil
}

func flatTransform(string) []string {
	return []string{}
}
