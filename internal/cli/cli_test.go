package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/comalice/listx"
	"github.com/comalice/listx/internal/primitives"
	"github.com/comalice/listx/internal/script"
	"github.com/comalice/listx/pkg/logger"
)

func execute(t *testing.T, deps Deps, args ...string) (string, error) {
	t.Helper()
	if deps.Logger == nil {
		deps.Logger = logger.Test(t)
	}
	cmd := NewRootCommand(deps)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCommand_Structure(t *testing.T) {
	t.Parallel()

	cmd := NewRootCommand(Deps{})
	assert.Equal(t, "listx", cmd.Use)

	for _, name := range []string{"config", "log-level", "format"} {
		require.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	var uses []string
	for _, sub := range cmd.Commands() {
		uses = append(uses, strings.Fields(sub.Use)[0])
	}
	assert.ElementsMatch(t, []string{"run", "dump", "version"}, uses)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := execute(t, Deps{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "listx dev\n", out)
}

func TestRun_Text(t *testing.T) {
	t.Parallel()

	out, err := execute(t, Deps{}, "run", filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"#0 add",
		"#1 remove -> true",
		"#2 at !! at: index 9 out of range [0,2)",
		"#3 len -> 2",
		"final [22 33]",
		"",
	}, "\n"), out)
}

func TestRun_JSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, Deps{}, "run", "--format", "json", filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)

	var rep script.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "demo", rep.Name)
	assert.Equal(t, []string{"22", "33"}, rep.Final)
	assert.Len(t, rep.Failed(), 1)
}

func TestRun_StopOnError(t *testing.T) {
	t.Parallel()

	lggr, logs := logger.TestObserved(t, zapcore.ErrorLevel)
	out, err := execute(t, Deps{Logger: lggr}, "run", "--stop-on-error", filepath.Join("testdata", "demo.yaml"))
	require.ErrorIs(t, err, listx.ErrOutOfRange)
	assert.Contains(t, out, "final [22 33]")
	assert.NotContains(t, out, "#3")
	assert.Equal(t, 1, logs.FilterMessage("Script aborted").Len())
}

func TestRun_MissingScript(t *testing.T) {
	t.Parallel()

	_, err := execute(t, Deps{}, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load script")
}

func TestDump_Formats(t *testing.T) {
	t.Parallel()

	out, err := execute(t, Deps{}, "dump", "a", "b")
	require.NoError(t, err)
	assert.Contains(t, out, `list "listx" len=2 version=0`)
	assert.Contains(t, out, "value=a")

	out, err = execute(t, Deps{}, "dump", "-f", "dot", "a")
	require.NoError(t, err)
	assert.Contains(t, out, `digraph "listx"`)

	out, err = execute(t, Deps{}, "dump", "--format", "json", "a", "b", "c")
	require.NoError(t, err)
	var snap primitives.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, 3, snap.Len)
}

func TestDump_SeedFromConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "listx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: seeded\nseed: [x, y]\n"), 0o600))

	cmd := NewRootCommand(Deps{Logger: logger.Test(t)})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "dump"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `list "seeded" len=2`)
	assert.Contains(t, out.String(), "value=y")
}

func TestInvalidFormatFlag(t *testing.T) {
	t.Parallel()

	_, err := execute(t, Deps{}, "dump", "--format", "svg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
