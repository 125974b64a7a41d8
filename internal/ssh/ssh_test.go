package ssh

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 bytes", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes kept whole", "日本語のテスト名前", "日本語のテ"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"invalid utf8 dropped", "ab\xffcd", "abcd"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestPlayerNameFallsBackToGuest(t *testing.T) {
	if got := playerName("bob"); got != "bob" {
		t.Errorf("playerName(bob) = %q", got)
	}
	a, b := playerName("\x00"), playerName("")
	if !strings.HasPrefix(a, "guest-") || len(a) != len("guest-")+8 {
		t.Errorf("guest name = %q", a)
	}
	if a == b {
		t.Error("guest names collide")
	}
}

func TestTermFromEnv(t *testing.T) {
	cases := []struct {
		name    string
		environ []string
		want    string
	}{
		{"allowed", []string{"LANG=C", "TERM=tmux"}, "tmux"},
		{"unknown term", []string{"TERM=evil-term"}, defaultTerm},
		{"path traversal", []string{"TERM=../../../etc/passwd"}, defaultTerm},
		{"missing", nil, defaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := termFromEnv(tc.environ); got != tc.want {
				t.Errorf("termFromEnv = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLoadOrCreateHostKey(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "host_key")

	first, err := LoadOrCreateHostKey(path, logger)
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("key not persisted: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("key mode = %v; want 0600", info.Mode().Perm())
	}

	second, err := LoadOrCreateHostKey(path, logger)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Error("reloaded key differs from the generated one")
	}
}

func TestLoadOrCreateHostKeyReplacesGarbage(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrCreateHostKey(path, logger); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "PRIVATE KEY") {
		t.Errorf("key file = %q", data)
	}
}
