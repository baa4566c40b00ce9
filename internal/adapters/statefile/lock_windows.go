//go:build windows

package statefile

// lockFile is a no-op on Windows; the rename in Save is still atomic enough
// for a single-process session file.
func lockFile(path string) (func(), error) {
	return func() {}, nil
}
