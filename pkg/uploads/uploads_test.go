package uploads

import (
	"os"
	"path/filepath"
	"testing"
)

func TestURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"projects/a.png", "/media/projects/a.png"},
		{"/static/img/me.png", "/static/img/me.png"},
		{"https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
	}
	for _, tt := range tests {
		if got := URL(tt.in); got != tt.want {
			t.Errorf("URL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemoveStaysInsideRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "media")
	if err := os.MkdirAll(filepath.Join(root, "projects"), 0o755); err != nil {
		t.Fatal(err)
	}
	inside := filepath.Join(root, "projects", "a.png")
	outside := filepath.Join(parent, "secret.txt")
	for _, p := range []string{inside, outside} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	s := NewStore(root)
	s.Remove("../secret.txt")
	s.Remove("projects/a.png")
	s.Remove("projects/missing.png")

	if _, err := os.Stat(outside); err != nil {
		t.Errorf("file outside the root was removed: %v", err)
	}
	if _, err := os.Stat(inside); !os.IsNotExist(err) {
		t.Errorf("stored file still exists: %v", err)
	}
}

func TestAllowedExt(t *testing.T) {
	if !allowedExt(".png", ImageExtensions) || allowedExt(".exe", ImageExtensions) || allowedExt("", DocumentExtensions) {
		t.Errorf("allowedExt mismatch")
	}
}
