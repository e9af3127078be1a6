package pyproject

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalRenderFields(t *testing.T) {
	rendered, err := Canonical("demo-pkg", "demo_pkg").Render()
	require.NoError(t, err)

	assert.Contains(t, rendered, `name = "demo-pkg"`)
	assert.Contains(t, rendered, `version = "0.1.0"`)
	assert.Contains(t, rendered, `description = "Add your description here"`)
	assert.Contains(t, rendered, `readme = "README.md"`)
	assert.Contains(t, rendered, `requires-python = ">=3.14"`)
	assert.Contains(t, rendered, `dependencies = []`)
	assert.Contains(t, rendered, "[project.scripts]")
	assert.Contains(t, rendered, `demo-pkg = "demo_pkg:main"`)
	assert.Contains(t, rendered, "[build-system]")
	assert.Contains(t, rendered, `requires = ["uv_build>=0.9.30,<0.10.0"]`)
	assert.Contains(t, rendered, `build-backend = "uv_build"`)
}

// The rendered manifest must contain exactly the canonical keys, no matter
// what the external initializer had produced.
func TestCanonicalExactKeySet(t *testing.T) {
	rendered, err := Canonical("example-pkg", "example_pkg").Render()
	require.NoError(t, err)

	var doc map[string]map[string]any
	require.NoError(t, toml.Unmarshal([]byte(rendered), &doc))

	require.Len(t, doc, 2)
	require.Contains(t, doc, "project")
	require.Contains(t, doc, "build-system")

	projectKeys := make([]string, 0, len(doc["project"]))
	for k := range doc["project"] {
		projectKeys = append(projectKeys, k)
	}
	assert.ElementsMatch(t, []string{
		"name", "version", "description", "readme",
		"requires-python", "dependencies", "scripts",
	}, projectKeys)

	buildKeys := make([]string, 0, len(doc["build-system"]))
	for k := range doc["build-system"] {
		buildKeys = append(buildKeys, k)
	}
	assert.ElementsMatch(t, []string{"requires", "build-backend"}, buildKeys)

	var m Manifest
	require.NoError(t, toml.Unmarshal([]byte(rendered), &m))
	assert.Equal(t, "example-pkg", m.Project.Name)
	assert.Equal(t, "0.1.0", m.Project.Version)
	assert.Equal(t, map[string]string{"example-pkg": "example_pkg:main"}, m.Project.Scripts)
	assert.Empty(t, m.Project.Dependencies)
}

func TestRenderIsDeterministic(t *testing.T) {
	first, err := Canonical("demo-pkg", "demo_pkg").Render()
	require.NoError(t, err)
	second, err := Canonical("demo-pkg", "demo_pkg").Render()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHyphenatedScriptEntry(t *testing.T) {
	m := Canonical("example-pkg", "example_pkg")
	assert.Equal(t, map[string]string{"example-pkg": "example_pkg:main"}, m.Project.Scripts)
}

func TestREADME(t *testing.T) {
	got := README("demo-pkg")
	assert.Equal(t, "# demo-pkg\n\nShort description for demo-pkg.\n", got)
}

func TestInitPy(t *testing.T) {
	got := InitPy("demo-pkg")
	assert.Contains(t, got, "def main():")
	assert.Contains(t, got, `print("Hello from demo-pkg")`)
}
