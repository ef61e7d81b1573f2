package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"lingolab/internal/models"
)

// BackupVersion is written into every export
const BackupVersion = "1.0"

// BackupData is the on-disk shape of a progress export
type BackupData struct {
	Version      string                  `json:"version"`
	ExportedAt   time.Time               `json:"exported_at"`
	DatabaseType string                  `json:"database_type"`
	Progress     []models.ProgressRecord `json:"progress"`
}

// ProgressArchive is the storage a backup reads from and writes to
type ProgressArchive interface {
	List(ctx context.Context) ([]models.ProgressRecord, error)
	Import(ctx context.Context, records []models.ProgressRecord) error
	DeleteAll(ctx context.Context) (int64, error)
}

// BackupService handles progress export and restore
type BackupService struct {
	archive ProgressArchive
	dbType  string
	now     func() time.Time
}

// NewBackupService creates a new backup service
func NewBackupService(archive ProgressArchive, dbType string) *BackupService {
	return &BackupService{archive: archive, dbType: dbType, now: time.Now}
}

// Export writes every saved progress record to outputPath
func (s *BackupService) Export(ctx context.Context, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(ctx, file); err != nil {
		return err
	}
	return file.Close()
}

// ExportToWriter encodes every saved progress record as indented JSON
func (s *BackupService) ExportToWriter(ctx context.Context, w io.Writer) error {
	records, err := s.archive.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to export progress: %w", err)
	}

	backup := &BackupData{
		Version:      BackupVersion,
		ExportedAt:   s.now().UTC(),
		DatabaseType: s.dbType,
		Progress:     records,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	slog.InfoContext(ctx, "progress exported", "records", len(records))
	return nil
}

// Import restores progress from a backup file
func (s *BackupService) Import(ctx context.Context, inputPath string, clear bool) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()
	return s.ImportFromReader(ctx, file, clear)
}

// ImportFromReader restores progress from r. With clear set, existing records
// are removed first; otherwise imported slots overwrite matching ones.
func (s *BackupService) ImportFromReader(ctx context.Context, r io.Reader, clear bool) error {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}
	if backup.Version != BackupVersion {
		return fmt.Errorf("unsupported backup version %q", backup.Version)
	}
	for i, rec := range backup.Progress {
		if rec.LearnerID == "" || rec.Slot == "" {
			return fmt.Errorf("record %d: learner_id and slot are required", i)
		}
	}

	slog.InfoContext(ctx, "importing progress",
		"version", backup.Version,
		"exported_at", backup.ExportedAt,
		"records", len(backup.Progress))

	if clear {
		n, err := s.archive.DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear progress: %w", err)
		}
		slog.InfoContext(ctx, "cleared existing progress", "records", n)
	}

	if err := s.archive.Import(ctx, backup.Progress); err != nil {
		return fmt.Errorf("failed to import progress: %w", err)
	}
	return nil
}
