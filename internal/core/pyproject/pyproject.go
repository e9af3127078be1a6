// Package pyproject renders the canonical files pydt lays down in a fresh
// project: the pyproject.toml manifest, the README, the package
// __init__.py, and the .python-version marker. Rendering is pure; writing
// the files is the scaffolder's job.
package pyproject

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

const (
	// FileName is the manifest filename.
	FileName = "pyproject.toml"
	// VersionFileName is the interpreter version marker filename.
	VersionFileName = ".python-version"
	// TypedMarkerName marks a package as shipping type information.
	TypedMarkerName = "py.typed"

	// PythonVersion is written to .python-version.
	PythonVersion = "3.14"

	initialVersion = "0.1.0"
	requiresPython = ">=3.14"
	uvBuildRequire = "uv_build>=0.9.30,<0.10.0"
	buildBackend   = "uv_build"
)

// Manifest models the canonical pyproject.toml. Whatever uv init generated
// is discarded and replaced by this structure.
type Manifest struct {
	Project     ProjectTable `toml:"project"`
	BuildSystem BuildTable   `toml:"build-system"`
}

// ProjectTable is the [project] section.
type ProjectTable struct {
	Name           string            `toml:"name"`
	Version        string            `toml:"version"`
	Description    string            `toml:"description"`
	Readme         string            `toml:"readme"`
	RequiresPython string            `toml:"requires-python"`
	Dependencies   []string          `toml:"dependencies"`
	Scripts        map[string]string `toml:"scripts"`
}

// BuildTable is the [build-system] section.
type BuildTable struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

// Canonical builds the organization-wide manifest for a project: version
// 0.1.0, empty dependencies, and one console script mapping the hyphenated
// project name to the module's main().
func Canonical(name, moduleName string) Manifest {
	return Manifest{
		Project: ProjectTable{
			Name:           name,
			Version:        initialVersion,
			Description:    "Add your description here",
			Readme:         "README.md",
			RequiresPython: requiresPython,
			Dependencies:   []string{},
			Scripts: map[string]string{
				name: moduleName + ":main",
			},
		},
		BuildSystem: BuildTable{
			Requires:     []string{uvBuildRequire},
			BuildBackend: buildBackend,
		},
	}
}

// Render encodes the manifest as TOML. Output is deterministic: rendering
// the same manifest twice yields byte-identical content.
func (m Manifest) Render() (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(m); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// README returns the canonical README.md content.
func README(name string) string {
	return fmt.Sprintf("# %s\n\nShort description for %s.\n", name, name)
}

// InitPy returns the canonical src/<module>/__init__.py content.
func InitPy(name string) string {
	return fmt.Sprintf("def main():\n    # Entry point placeholder for %s\n    print(\"Hello from %s\")\n", name, name)
}
