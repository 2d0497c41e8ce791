package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestDir(t *testing.T) {
	t.Run("xdg", func(t *testing.T) {
		td := t.TempDir()
		t.Setenv("XDG_RUNTIME_DIR", td)

		got, err := Dir()
		if err != nil {
			t.Fatalf("Dir() error: %v", err)
		}
		if got != td {
			t.Fatalf("Dir() = %q, want %q", got, td)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		t.Setenv("XDG_RUNTIME_DIR", "")

		got, err := Dir()
		if err != nil {
			t.Fatalf("Dir() error: %v", err)
		}
		uid := os.Getuid()
		wantRun := fmt.Sprintf("/run/user/%d", uid)
		wantTmp := filepath.Join(os.TempDir(), fmt.Sprintf("edgesnap-runtime-%d", uid))
		if got != wantRun && got != wantTmp {
			t.Fatalf("Dir() = %q, want %q or %q", got, wantRun, wantTmp)
		}
		if !isDir(got) {
			t.Fatalf("Dir() returned %q which is not a directory", got)
		}
	})
}

func TestSocketPath(t *testing.T) {
	td := t.TempDir()
	tests := []struct {
		name     string
		override string
		want     string
	}{
		{"runtime dir", "", filepath.Join(td, SocketName)},
		{"override", "/tmp/custom.sock", "/tmp/custom.sock"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_RUNTIME_DIR", td)
			t.Setenv(SocketEnv, tt.override)

			got, err := SocketPath()
			if err != nil {
				t.Fatalf("SocketPath() error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("SocketPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
