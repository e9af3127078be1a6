// Package project defines the project description consumed by the scaffolder.
package project

import (
	"path/filepath"
	"strings"

	"github.com/peridot-cli/pydt/internal/core/errs"
)

// Kind selects the uv project layout.
type Kind string

const (
	KindApp     Kind = "app"
	KindPackage Kind = "package"
	KindLibrary Kind = "library"
)

// ParseKind maps a --type flag value to a Kind. "lib" is accepted as an
// alias for "library".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "app":
		return KindApp, nil
	case "package":
		return KindPackage, nil
	case "library", "lib":
		return KindLibrary, nil
	}
	return "", errs.New(errs.InvalidSpec, "unknown project type %q (expected app, package or library)", s)
}

// Spec describes one project to scaffold.
type Spec struct {
	Kind     Kind
	Name     string // hyphenated project name, e.g. "example-pkg"
	BasePath string // existing directory the project is created under
}

// ModuleName returns the importable Python package name derived from the
// project name: hyphens become underscores.
func (s Spec) ModuleName() string {
	return strings.ReplaceAll(s.Name, "-", "_")
}

// Dir returns the project directory under BasePath.
func (s Spec) Dir() string {
	return filepath.Join(s.BasePath, s.Name)
}

// Validate rejects specs that would produce broken project names or paths.
// It has no side effects.
func (s Spec) Validate() error {
	switch s.Kind {
	case KindApp, KindPackage, KindLibrary:
	default:
		return errs.New(errs.InvalidSpec, "unknown project kind %q", string(s.Kind))
	}
	if s.Name == "" {
		return errs.New(errs.InvalidSpec, "project name is required")
	}
	if !validName(s.Name) {
		return errs.New(errs.InvalidSpec, "invalid project name %q: use lowercase letters, digits and single hyphens, starting with a letter", s.Name)
	}
	if s.BasePath == "" {
		return errs.New(errs.InvalidSpec, "base path is required")
	}
	return nil
}

// validName enforces hyphenated lowercase names that are safe both as a
// directory name and as a pyproject.toml project name.
func validName(name string) bool {
	if name[0] < 'a' || name[0] > 'z' {
		return false
	}
	prevHyphen := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			prevHyphen = false
		case c == '-':
			if prevHyphen || i == len(name)-1 {
				return false
			}
			prevHyphen = true
		default:
			return false
		}
	}
	return true
}
