package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// Configuration files are json5. Next to a checked-in `<name>.<ext>`
// there may be an untracked `<name>.local.<ext>` whose fields override
// the defaults, so per-machine settings never touch the main file.

func localName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + ".local" + ext
}

// ReadConfig loads `name` and merges its `.local` sibling on top.
// When neither file exists the error is os.ErrNotExist, so callers can
// treat a missing config as "use defaults" without string matching.
func ReadConfig[T any](name string) (T, error) {
	var cfg T

	loadedAny := false
	local := localName(name)
	for _, path := range []string{name, local} {
		contents, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return cfg, err
		}
		if len(contents) == 0 {
			continue
		}

		var layer T
		if err := json5.Unmarshal(contents, &layer); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		if err := mergo.Merge(&cfg, layer, mergo.WithOverride); err != nil {
			return cfg, fmt.Errorf("merge %s: %w", path, err)
		}

		if path == local {
			slog.Info("merging config with local overrides", "local", path)
		}
		loadedAny = true
	}

	if !loadedAny {
		return cfg, os.ErrNotExist
	}
	return cfg, nil
}

// ReadRecursively looks for `name` in the working directory and then
// in each parent up to the filesystem root, taking the first hit.
func ReadRecursively[T any](name string) (T, error) {
	var zero T

	dir, err := os.Getwd()
	if err != nil {
		return zero, err
	}

	for {
		cfg, err := ReadConfig[T](filepath.Join(dir, name))
		if err == nil {
			return cfg, nil
		}
		if !os.IsNotExist(err) {
			return zero, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return zero, os.ErrNotExist
		}
		dir = parent
	}
}
