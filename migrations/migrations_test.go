package migrations

import (
	"strings"
	"testing"
)

func TestSource_ParsesEmbeddedFiles(t *testing.T) {
	tests := []struct {
		driver string
		want   int
	}{
		{"postgres", 2},
		{"sqlite", 1},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			src, err := Source(tt.driver)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			ms, err := src.FindMigrations()
			if err != nil {
				t.Fatalf("failed to parse migrations: %v", err)
			}
			if len(ms) != tt.want {
				t.Fatalf("expected %d migrations, got %d", tt.want, len(ms))
			}
			for _, m := range ms {
				if len(m.Up) == 0 || len(m.Down) == 0 {
					t.Fatalf("migration %s must have up and down statements", m.Id)
				}
			}
			if !strings.Contains(ms[0].Up[0], "CREATE TABLE IF NOT EXISTS events") {
				t.Fatalf("first migration should create events, got %q", ms[0].Up[0])
			}
		})
	}
}

func TestSource_UnknownDriver(t *testing.T) {
	if _, err := Source("memory"); err == nil {
		t.Fatalf("expected error for driver without migrations")
	}
}
