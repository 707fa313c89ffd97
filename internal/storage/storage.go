package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetUserHomeDir returns the user's home directory on linux, windows or macOS
// taken from: https://gist.github.com/miguelmota/f30a04a6d64bd52d7ab59ea8d95e54da
func GetUserHomeDir() string {
	if runtime.GOOS == "windows" {
		home := os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
		if home == "" {
			home = os.Getenv("USERPROFILE")
		}
		return home
	}
	return os.Getenv("HOME")
}

// DefaultKeystoreDir is where geth keeps its keystore for the current user.
func DefaultKeystoreDir() string {
	return filepath.Join(GetUserHomeDir(), ".ethereum", "keystore")
}

// Exists checks if the given file or folder for a path exists
func Exists(path string) bool {
	if path == "" {
		return false
	}

	_, err := os.Stat(path)
	if err != nil || os.IsNotExist(err) {
		return false
	}

	return true
}

// Save writes data to a new file, it never overwrites an existing one
func Save(name string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

// Read reads data from a file
func Read(name string) ([]byte, error) {
	return os.ReadFile(name)
}
