package sqlitemigrate

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "migrate.db")
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}

func TestApplyRunsFilesOnce(t *testing.T) {
	t.Parallel()

	migrationFS := fstest.MapFS{
		"0001_init.sql": &fstest.MapFile{Data: []byte(`
-- +migrate Up
CREATE TABLE widgets (id TEXT PRIMARY KEY);
-- +migrate Down
DROP TABLE widgets;
`)},
		"0002_rows.sql": &fstest.MapFile{Data: []byte(`
-- +migrate Up
INSERT INTO widgets (id) VALUES ('w1');
`)},
		"readme.txt": &fstest.MapFile{Data: []byte("not sql")},
	}

	sqlDB := openTestDB(t)
	if err := Apply(sqlDB, migrationFS); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	// Second run must not replay the insert.
	if err := Apply(sqlDB, migrationFS); err != nil {
		t.Fatalf("Apply() second run error = %v", err)
	}

	var count int
	if err := sqlDB.QueryRow("SELECT COUNT(*) FROM widgets").Scan(&count); err != nil {
		t.Fatalf("count widgets: %v", err)
	}
	if count != 1 {
		t.Fatalf("widgets = %d, want 1", count)
	}
}

func TestApplyRequiresDB(t *testing.T) {
	t.Parallel()

	if err := Apply(nil, fstest.MapFS{}); err == nil {
		t.Fatal("expected error for nil db")
	}
}

func TestExtractUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no markers", "CREATE TABLE t (id TEXT);", "CREATE TABLE t (id TEXT);"},
		{"up only", "-- +migrate Up\nCREATE TABLE t (id TEXT);", "\nCREATE TABLE t (id TEXT);"},
		{"up and down", "-- +migrate Up\nCREATE TABLE t (id TEXT);\n-- +migrate Down\nDROP TABLE t;", "\nCREATE TABLE t (id TEXT);\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractUp(tc.content); got != tc.want {
				t.Fatalf("ExtractUp() = %q, want %q", got, tc.want)
			}
		})
	}
}
