package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, args ...string) (string, error) {
	color.NoColor = true
	cmd := RootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--env-file="))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNextCmd(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		expect      string
		expectErr   bool
	}{
		{description: "default vertex", args: []string{"next", "--count", "3"}, expect: "V0\nV1\nV2\n"},
		{description: "edge prefix override", args: []string{"next", "--kind", "edge", "--prefix", "R", "-n", "2"}, expect: "R0\nR1\n"},
		{description: "namespace scope", args: []string{"next", "--scope", "namespace"}, expect: "V0\n"},
		{description: "unknown kind", args: []string{"next", "--kind", "hyperedge"}, expectErr: true},
		{description: "bad count", args: []string{"next", "--count", "0"}, expectErr: true},
		{description: "bad scope", args: []string{"next", "--scope", "cluster"}, expectErr: true},
	}
	for _, testCase := range testCases {
		out, err := run(t, testCase.args...)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, out, testCase.description)
	}
}

func TestCheckCmd(t *testing.T) {
	out, err := run(t, "check", "V3", `"42"`, "null")
	assert.NoError(t, err)
	assert.Equal(t, "VALID   V3\nVALID   \"42\"\nABSENT  null\n", out)

	out, err = run(t, "check", "E7", "42", "true")
	assert.EqualError(t, err, "2 invalid identifier(s)")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if assert.Len(t, lines, 3) {
		assert.Equal(t, "VALID   E7", lines[0])
		assert.Equal(t, "INVALID (int) 42", lines[1])
		assert.Equal(t, "INVALID (bool) true", lines[2])
	}
}

func TestConfigCmd(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "graphid.yaml")
	assert.NoError(t, os.WriteFile(configPath, []byte("namespaces:\n  vertex: ${env.GRAPHID_CLI_PREFIX}\n"), 0o644))
	envPath := filepath.Join(dir, "test.env")
	assert.NoError(t, os.WriteFile(envPath, []byte("GRAPHID_CLI_PREFIX=Person\n"), 0o644))
	defer os.Unsetenv("GRAPHID_CLI_PREFIX")

	color.NoColor = true
	cmd := RootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"config", "--config", configPath, "--env-file", envPath})
	assert.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "vertex: Person")
	assert.Contains(t, out.String(), "edge: E")

	ids, err := run(t, "next", "--config", configPath, "-n", "2")
	assert.NoError(t, err)
	assert.Equal(t, "Person0\nPerson1\n", ids)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	assert.NoError(t, loadEnv(filepath.Join(t.TempDir(), "missing.env")))
	assert.NoError(t, loadEnv(""))
}
