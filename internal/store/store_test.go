package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"dungeon-crawl/internal/config"
)

type record struct {
	Name  string
	Score int
}

// exercise runs the shared Store contract against s.
func exercise(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Read(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("read missing: err = %v, want ErrNotFound", err)
	}
	if err := s.Write(ctx, DungeonPath("alice"), []byte("one")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Write(ctx, DungeonPath("alice"), []byte("two")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := s.Read(ctx, DungeonPath("alice"))
	if err != nil || string(got) != "two" {
		t.Fatalf("read = %q, %v; want \"two\"", got, err)
	}
	if err := s.Delete(ctx, DungeonPath("alice")); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, DungeonPath("alice")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: err = %v, want ErrNotFound", err)
	}

	if err := WriteRecord(ctx, s, LeaderboardPath, record{Name: "bob", Score: 7}); err != nil {
		t.Fatalf("write record: %v", err)
	}
	r, err := ReadRequired[record](ctx, s, LeaderboardPath)
	if err != nil || r.Name != "bob" || r.Score != 7 {
		t.Fatalf("read record = %+v, %v", r, err)
	}
}

func TestMemory(t *testing.T) {
	exercise(t, NewMemory())
}

func TestSQLite(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer s.Close()
	exercise(t, s)
}

func TestSQLiteRequiresPath(t *testing.T) {
	if _, err := OpenSQLite("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	exercise(t, s)
}

func TestFileStoreStaysInsideRoot(t *testing.T) {
	root := t.TempDir()
	s, err := NewFileStore(root)
	if err != nil {
		t.Fatal(err)
	}
	got := s.file("/../../etc/passwd")
	rel, err := filepath.Rel(root, got)
	if err != nil || strings.HasPrefix(rel, "..") {
		t.Fatalf("record path %q escapes %q", got, root)
	}
}

func TestReadOrDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	def := record{Name: "default"}

	r, err := ReadOr(ctx, s, StatsPath("nobody"), def)
	if err != nil || r != def {
		t.Fatalf("missing record: %+v, %v", r, err)
	}

	if err := s.Write(ctx, StatsPath("corrupt"), []byte{0xff, 0x00}); err != nil {
		t.Fatal(err)
	}
	r, err = ReadOr(ctx, s, StatsPath("corrupt"), def)
	if err != nil || r != def {
		t.Fatalf("corrupt record: %+v, %v", r, err)
	}
	if _, err := ReadRequired[record](ctx, s, StatsPath("corrupt")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("required corrupt record: err = %v, want ErrNotFound", err)
	}
}

func TestDeleteRecordIgnoresMissing(t *testing.T) {
	if err := DeleteRecord(context.Background(), NewMemory(), "gone"); err != nil {
		t.Fatal(err)
	}
}

func TestPaths(t *testing.T) {
	tests := []struct{ got, want string }{
		{DungeonPath("alice"), "/users/alice/v1/dungeon"},
		{StatsPath("alice"), "/users/alice/v1/stats"},
		{AchievementsPath("alice"), "/users/alice/v1/achievements"},
		{ManifestPath("alice"), "/users/alice/v1/multiplayer_dungeon_manifest"},
		{PartyPath(42), "/multiplayer_dungeons/v1/42"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestOpenBackends(t *testing.T) {
	s, err := Open(config.Config{Backend: BackendMemory})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*Memory); !ok {
		t.Fatalf("got %T, want *Memory", s)
	}

	s, err = Open(config.Config{Backend: BackendFile, DataDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Fatalf("got %T, want *FileStore", s)
	}

	if _, err := Open(config.Config{Backend: BackendPostgres}); err == nil {
		t.Fatal("postgres without DATABASE_URL should fail")
	}
	if _, err := Open(config.Config{Backend: "carrier-pigeon"}); err == nil {
		t.Fatal("unknown backend should fail")
	}
}
