// Where: internal/infra/envfile/envfile.go
// What: Append secret assignments to dotenv files.
// Why: Keep the appended block format and shadowing checks in one place.
package envfile

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/poruru-code/keygen/internal/infra/fileops"
)

// Block renders the text appended for one secret.
func Block(name, value string) string {
	return fmt.Sprintf("\n# Secret Key\n%s=%q\n", name, value)
}

// Append adds a Block for name=value to the end of path.
func Append(path, name, value string) error {
	return fileops.AppendFile(path, Block(name, value))
}

// Defines reports whether the dotenv file at path already assigns name.
// A missing or unparsable file counts as not defining it.
func Defines(path, name string) bool {
	if !fileops.FileExists(path) {
		return false
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return false
	}
	_, ok := values[name]
	return ok
}
