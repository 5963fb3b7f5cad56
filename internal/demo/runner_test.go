package demo_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kode4food/timeline"
	"github.com/kode4food/timeline/internal/demo"
)

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestDefaultScriptGolden(t *testing.T) {
	script, err := demo.DefaultScript()
	require.NoError(t, err)

	var buf bytes.Buffer
	runner := demo.NewRunner(&buf, timeline.DefaultConfig())
	require.NoError(t, runner.Run(script))
	assert.True(t, runner.Timeline().Validate())

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "default", buf.Bytes())
}

func TestRunnerLogsSteps(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := timeline.DefaultConfig()
	cfg.Logger = zap.New(core)

	script, err := demo.DefaultScript()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, demo.NewRunner(&buf, cfg).Run(script))

	steps := logs.FilterMessage("running step").All()
	assert.Len(t, steps, len(script.Steps))
	assert.Equal(t, "demo", steps[0].LoggerName)
	assert.Equal(t, 11, logs.FilterMessage("event inserted").Len())
	assert.Equal(t, 1, logs.FilterMessage("event removed").Len())
}

func TestParseScript(t *testing.T) {
	script, err := demo.ParseScript([]byte(`
name: small
steps:
  - title: setup
    insert:
      - {start: 0, end: 10, label: A}
    at: [5]
    range: {start: 0, end: 20}
    validate: true
`))
	require.NoError(t, err)

	assert.Equal(t, "small", script.Name)
	require.Len(t, script.Steps, 1)
	step := script.Steps[0]
	assert.Equal(t, []demo.Span{{Start: 0, End: 10, Label: "A"}}, step.Insert)
	assert.Equal(t, []int64{5}, step.At)
	assert.Equal(t, &demo.Span{Start: 0, End: 20}, step.Range)
	assert.True(t, step.Validate)
	assert.False(t, step.Print)
}

func TestParseScriptErrors(t *testing.T) {
	_, err := demo.ParseScript([]byte("name: empty\n"))
	assert.ErrorIs(t, err, demo.ErrNoSteps)

	_, err = demo.ParseScript([]byte("steps: [unterminated"))
	assert.Error(t, err)
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.yaml")
	content := "name: file\nsteps:\n  - insert: [{start: 1, end: 2, label: X}]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	script, err := demo.LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, "file", script.Name)

	_, err = demo.LoadScript(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: bad\n"), 0o644))
	_, err = demo.LoadScript(bad)
	assert.ErrorIs(t, err, demo.ErrNoSteps)
	assert.Contains(t, err.Error(), bad)
}

func TestRunInvalidSpan(t *testing.T) {
	script := &demo.Script{
		Name: "invalid",
		Steps: []demo.Step{
			{Title: "ok", Insert: []demo.Span{{Start: 0, End: 5, Label: "A"}}},
			{Title: "bad", Insert: []demo.Span{{Start: 5, End: 5, Label: "B"}}},
		},
	}

	var buf bytes.Buffer
	runner := demo.NewRunner(&buf, timeline.DefaultConfig())
	err := runner.Run(script)

	assert.ErrorIs(t, err, timeline.ErrInvalidInterval)
	assert.Contains(t, err.Error(), "step 2 (bad)")
	assert.Equal(t, 1, runner.Timeline().Len())
}

func TestRunInvalidRange(t *testing.T) {
	script := &demo.Script{
		Name:  "range",
		Steps: []demo.Step{{Range: &demo.Span{Start: 10, End: 2}}},
	}

	err := demo.NewRunner(&bytes.Buffer{}, timeline.Config{}).Run(script)
	assert.ErrorIs(t, err, timeline.ErrInvalidInterval)
}

func TestRunRemoveMissing(t *testing.T) {
	script := &demo.Script{
		Name:  "remove",
		Steps: []demo.Step{{Remove: "ghost"}},
	}

	var buf bytes.Buffer
	require.NoError(t, demo.NewRunner(&buf, timeline.Config{}).Run(script))
	assert.Contains(t, buf.String(), `No event labelled "ghost"`)
}

func TestRunWriteError(t *testing.T) {
	script, err := demo.DefaultScript()
	require.NoError(t, err)

	runner := demo.NewRunner(failingWriter{}, timeline.DefaultConfig())
	assert.ErrorIs(t, runner.Run(script), errWrite)
}
