package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"lingolab/internal/models"
)

type memArchive struct {
	records []models.ProgressRecord
	cleared bool
}

func (a *memArchive) List(context.Context) ([]models.ProgressRecord, error) {
	return a.records, nil
}

func (a *memArchive) Import(_ context.Context, recs []models.ProgressRecord) error {
	a.records = append(a.records, recs...)
	return nil
}

func (a *memArchive) DeleteAll(context.Context) (int64, error) {
	n := int64(len(a.records))
	a.records = nil
	a.cleared = true
	return n, nil
}

func TestBackupRoundTrip(t *testing.T) {
	at := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	src := &memArchive{records: []models.ProgressRecord{
		{LearnerID: "a", Slot: "dictation_progress", Payload: `{"currentPass":2}`, UpdatedAt: at},
	}}
	svc := NewBackupService(src, "sqlite")
	svc.now = func() time.Time { return at }

	var buf bytes.Buffer
	if err := svc.ExportToWriter(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}

	var data BackupData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatal(err)
	}
	if data.Version != BackupVersion || data.DatabaseType != "sqlite" || len(data.Progress) != 1 {
		t.Errorf("exported = %+v", data)
	}

	dst := &memArchive{records: []models.ProgressRecord{{LearnerID: "z", Slot: "s"}}}
	if err := NewBackupService(dst, "postgres").ImportFromReader(context.Background(), &buf, true); err != nil {
		t.Fatal(err)
	}
	if !dst.cleared || len(dst.records) != 1 || dst.records[0].LearnerID != "a" {
		t.Errorf("imported = %+v, cleared = %v", dst.records, dst.cleared)
	}
}

func TestBackupImportRejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"not json", "nope", "decode"},
		{"wrong version", `{"version":"9"}`, "unsupported backup version"},
		{"missing learner", `{"version":"1.0","progress":[{"slot":"s"}]}`, "learner_id and slot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archive := &memArchive{}
			err := NewBackupService(archive, "sqlite").ImportFromReader(context.Background(), strings.NewReader(tt.body), true)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want %q", err, tt.wantErr)
			}
			if archive.cleared {
				t.Error("invalid backups must not clear existing data")
			}
		})
	}
}
