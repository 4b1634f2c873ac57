package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
)

// FileStore keeps the snapshot in a local JSON file. It is the
// zero-infrastructure backend for single-operator use.
type FileStore struct {
	path   string
	logger *zap.Logger
}

func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) Load(ctx context.Context) (*model.Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.logger.Info("no snapshot found, seeding initial data", zap.String("path", s.path))
		seed := SeedSnapshot()
		if err := s.save(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	snapshot := &model.Snapshot{}
	if err := json.Unmarshal(raw, snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", s.path, err)
	}
	return normalize(snapshot), nil
}

func (s *FileStore) save(snapshot *model.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialise snapshot: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	// Write-then-rename keeps a crash from truncating the snapshot
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}
	return nil
}

func (s *FileStore) mutate(ctx context.Context, fn func(*model.Snapshot)) error {
	snapshot, err := s.Load(ctx)
	if err != nil {
		return err
	}
	fn(snapshot)
	return s.save(snapshot)
}

func (s *FileStore) ReplaceDrivers(ctx context.Context, drivers []model.Driver) error {
	return s.mutate(ctx, func(snap *model.Snapshot) { snap.Drivers = drivers })
}

func (s *FileStore) ReplaceBuses(ctx context.Context, buses []model.Bus) error {
	return s.mutate(ctx, func(snap *model.Snapshot) { snap.Buses = buses })
}

func (s *FileStore) ReplaceRequests(ctx context.Context, requests []model.BusRequest) error {
	return s.mutate(ctx, func(snap *model.Snapshot) { snap.Requests = requests })
}

func (s *FileStore) ReplaceUnavailabilities(ctx context.Context, unavailabilities []model.Unavailability) error {
	return s.mutate(ctx, func(snap *model.Snapshot) { snap.Unavailabilities = unavailabilities })
}

func (s *FileStore) ReplaceEntities(ctx context.Context, entities []model.Entity) error {
	return s.mutate(ctx, func(snap *model.Snapshot) { snap.Entities = entities })
}

func (s *FileStore) ReplaceShifts(ctx context.Context, shifts []model.Shift) error {
	return s.mutate(ctx, func(snap *model.Snapshot) { snap.Shifts = shifts })
}
