// Where: internal/infra/fileops/file_ops.go
// What: Filesystem writes for generated keys.
// Why: Keep file modes and open flags consistent between output destinations.
package fileops

import (
	"os"
)

// SecretFileMode is applied to files created to hold key material.
const SecretFileMode os.FileMode = 0o600

// WriteFile replaces the content of path.
// The parent directory must already exist.
func WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), SecretFileMode)
}

// AppendFile appends content to path, creating the file if absent.
func AppendFile(path, content string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, SecretFileMode)
	if err != nil {
		return err
	}
	if _, err := file.WriteString(content); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
