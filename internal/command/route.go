// Where: internal/command/route.go
// What: Output routing for generated keys.
// Why: Send the key to stdout, a file, and/or the env file based on the request.
package command

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/poruru-code/keygen/internal/infra/envfile"
	"github.com/poruru-code/keygen/internal/infra/fileops"
	"github.com/poruru-code/keygen/internal/infra/ui"
)

// Router delivers an encoded key to the destinations a Request names.
type Router struct {
	Out   io.Writer
	UI    ui.UserInterface
	Getwd func() (string, error)
}

// Route writes the file first, then appends to the env file.
// The first failure stops routing. Stdout only receives the key when no
// destination is set.
func (r Router) Route(key string, req Request) error {
	if req.OutputPath == "" && !req.AppendEnv {
		_, err := fmt.Fprintln(r.Out, key)
		return err
	}

	if req.OutputPath != "" {
		if err := fileops.WriteFile(req.OutputPath, key+"\n"); err != nil {
			return fmt.Errorf("write key to %s: %w", req.OutputPath, err)
		}
		r.UI.Success(fmt.Sprintf("Key written to %s", req.OutputPath))
	}

	if req.AppendEnv {
		path, err := r.envPath(req.EnvFile)
		if err != nil {
			return err
		}
		if envfile.Defines(path, req.EnvKey) {
			r.UI.Warn(fmt.Sprintf("%s already defines %s; the new value is appended after it", path, req.EnvKey))
		}
		if err := envfile.Append(path, req.EnvKey, key); err != nil {
			return fmt.Errorf("append key to %s: %w", path, err)
		}
		r.UI.Success(fmt.Sprintf("%s appended to %s", req.EnvKey, path))
	}
	return nil
}

func (r Router) envPath(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	wd, err := r.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return filepath.Join(wd, name), nil
}
