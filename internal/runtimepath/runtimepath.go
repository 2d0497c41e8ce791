package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// SocketName is the file name of the daemon socket inside Dir.
	SocketName = "edgesnap.sock"

	// SocketEnv overrides the socket location entirely.
	SocketEnv = "EDGESNAP_SOCKET"
)

// Dir returns the per-user runtime directory: $XDG_RUNTIME_DIR, then
// /run/user/<uid>, then a private directory under /tmp that is created
// on demand.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir, nil
	}

	uid := os.Getuid()
	if dir := filepath.Join("/run/user", fmt.Sprint(uid)); isDir(dir) {
		return dir, nil
	}

	dir := filepath.Join(os.TempDir(), fmt.Sprintf("edgesnap-runtime-%d", uid))
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create runtime dir %s: %w", dir, err)
	}
	return dir, nil
}

// SocketPath returns where the daemon listens and clients dial.
func SocketPath() (string, error) {
	if p := os.Getenv(SocketEnv); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SocketName), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
