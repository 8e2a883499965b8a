package platform

import (
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// MarkExecutable adds execute permission for every class that already has
// read permission. Already-executable files come back unchanged, so the
// operation is idempotent.
func MarkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	mode := info.Mode().Perm()
	// Mirror the read bits into the execute bits (u+r → u+x, etc.).
	want := mode | (mode&0444)>>2
	if want == mode {
		return nil
	}
	return Chmod(path, want)
}
