package database

import (
	"strings"
	"testing"
)

func TestDialects(t *testing.T) {
	tests := []struct {
		name       string
		dialect    Dialect
		driver     string
		subdir     string
		upsertHint string
	}{
		{"sqlite", NewSQLiteDialect(), "sqlite3", "sqlite", "ON CONFLICT(learner_id, slot)"},
		{"postgres", NewPostgresDialect(), "postgres", "postgres", "ON CONFLICT (learner_id, slot)"},
		{"mysql", NewMySQLDialect(), "mysql", "mysql", "ON DUPLICATE KEY UPDATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.DriverName(); got != tt.driver {
				t.Errorf("DriverName() = %v, want %v", got, tt.driver)
			}
			if got := tt.dialect.MigrationsSubdir(); got != tt.subdir {
				t.Errorf("MigrationsSubdir() = %v, want %v", got, tt.subdir)
			}
			if got := tt.dialect.UpsertProgressQuery(); !strings.Contains(got, tt.upsertHint) {
				t.Errorf("UpsertProgressQuery() = %q, want it to contain %q", got, tt.upsertHint)
			}
			if !strings.Contains(tt.dialect.CreateMigrationsTableQuery(), "migrations") {
				t.Error("CreateMigrationsTableQuery() should create the migrations table")
			}
		})
	}
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no rewrite",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT * FROM learner_progress WHERE learner_id = ? AND slot = ?",
			expected: "SELECT * FROM learner_progress WHERE learner_id = ? AND slot = ?",
		},
		{
			name:     "PostgreSQL rewrite",
			dialect:  NewPostgresDialect(),
			query:    "SELECT * FROM learner_progress WHERE learner_id = ? AND slot = ?",
			expected: "SELECT * FROM learner_progress WHERE learner_id = $1 AND slot = $2",
		},
		{
			name:     "PostgreSQL upsert",
			dialect:  NewPostgresDialect(),
			query:    NewPostgresDialect().UpsertProgressQuery(),
			expected: "INSERT INTO learner_progress (learner_id, slot, payload, updated_at) VALUES ($1, $2, $3, $4)\n\t\tON CONFLICT (learner_id, slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at",
		},
		{
			name:     "MySQL no rewrite",
			dialect:  NewMySQLDialect(),
			query:    "SELECT * FROM learner_progress WHERE learner_id = ?",
			expected: "SELECT * FROM learner_progress WHERE learner_id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.RewriteQuery(tt.query)
			if result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMySQLDSNParseTime(t *testing.T) {
	d := NewMySQLDialect()
	tests := []struct {
		url  string
		want string
	}{
		{"user:pw@tcp(localhost:3306)/lingolab", "user:pw@tcp(localhost:3306)/lingolab?parseTime=true"},
		{"user:pw@tcp(localhost:3306)/lingolab?charset=utf8mb4", "user:pw@tcp(localhost:3306)/lingolab?charset=utf8mb4&parseTime=true"},
		{"user:pw@tcp(localhost:3306)/lingolab?parseTime=false", "user:pw@tcp(localhost:3306)/lingolab?parseTime=false"},
	}
	for _, tt := range tests {
		if got := d.DSN(DialectConfig{URL: tt.url}); got != tt.want {
			t.Errorf("DSN(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		dbType  string
		driver  string
		wantErr bool
	}{
		{"", "sqlite3", false},
		{"SQLite", "sqlite3", false},
		{"postgresql", "postgres", false},
		{"mysql", "mysql", false},
		{"oracle", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			d, _, err := DialectFor(tt.dbType, "x.db", "url")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.DriverName() != tt.driver {
				t.Errorf("driver = %s, want %s", d.DriverName(), tt.driver)
			}
		})
	}
}
