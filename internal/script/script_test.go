package script

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/comalice/listx"
	"github.com/comalice/listx/pkg/logger"
)

func TestLoadFileAndRun(t *testing.T) {
	t.Parallel()

	s, err := LoadFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)
	require.Len(t, s.Steps, 14)

	rep, err := Run(context.Background(), s, logger.Test(t))
	require.NoError(t, err)
	require.Len(t, rep.Results, 14)

	outputs := make([]string, 0, len(rep.Results))
	for _, r := range rep.Results {
		outputs = append(outputs, r.Output)
	}
	assert.Equal(t, []string{
		"", "3", "", "1 100 2 300", "2", "-1", "", "1", "", "100", "[_ x 2 300 _]", "", "", "",
	}, outputs)

	failed := rep.Failed()
	require.Len(t, failed, 5)
	assert.Equal(t, OpAt, failed[0].Op)
	assert.Contains(t, failed[0].Err, "out of range")
	assert.Equal(t, OpIterate, failed[1].Op)
	assert.Contains(t, failed[1].Err, listx.ErrModified.Error())
	assert.Contains(t, failed[2].Err, listx.ErrNilBuffer.Error())
	assert.Contains(t, failed[3].Err, listx.ErrOutOfRange.Error())
	assert.Contains(t, failed[4].Err, listx.ErrLengthMismatch.Error())

	assert.Equal(t, []string{"x", "2", "300"}, rep.Final)
}

func TestRun_StopOnError(t *testing.T) {
	t.Parallel()

	idx := 5
	s := &Script{
		Name:        "stop",
		Seed:        []string{"a"},
		StopOnError: true,
		Steps: []Step{
			{Op: OpAdd, Value: "b"},
			{Op: OpRemoveAt, Index: &idx},
			{Op: OpAdd, Value: "never"},
		},
	}
	lggr, logs := logger.TestObserved(t, zapcore.WarnLevel)
	rep, err := Run(context.Background(), s, lggr)
	require.ErrorIs(t, err, listx.ErrOutOfRange)
	require.Len(t, rep.Results, 2)
	assert.Equal(t, []string{"a", "b"}, rep.Final)
	assert.Equal(t, 1, logs.FilterMessage("Step failed").Len())
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Script{Steps: []Step{{Op: OpLen}}}
	_, err := Run(ctx, s, logger.Nop())
	require.ErrorIs(t, err, context.Canceled)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "unknown op", body: "steps: [{op: sort}]", want: `unknown op "sort"`},
		{name: "missing index", body: "steps: [{op: at}]", want: `op "at" requires index`},
		{name: "then on add", body: "steps: [{op: add, then: {op: clear}}]", want: "cannot carry a then step"},
		{name: "nested then", body: "steps: [{op: iterate, then: {op: iterate, then: {op: len}}}]", want: "cannot carry a then step"},
		{name: "bad yaml", body: "steps: [", want: "yaml unmarshal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_ThenOnIterate(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte("seed: [a, b]\nsteps: [{op: iterate, then: {op: remove, value: a}}]"))
	require.NoError(t, err)

	rep, err := Run(context.Background(), s, logger.Nop())
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)
	assert.Equal(t, "a", rep.Results[0].Output)
	assert.Contains(t, rep.Results[0].Err, listx.ErrModified.Error())
	assert.Equal(t, []string{"b"}, rep.Final)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read ")
}

func TestRun_NilLogger(t *testing.T) {
	t.Parallel()

	s := &Script{Seed: []string{"a"}, Steps: []Step{{Op: OpAdd, Value: "b"}, {Op: OpLen}}}
	rep, err := Run(context.Background(), s, nil)
	require.NoError(t, err)
	assert.Equal(t, "2", rep.Results[1].Output)
	assert.Equal(t, []string{"a", "b"}, rep.Final)
}

func TestRun_ThenAfterExhaustion(t *testing.T) {
	t.Parallel()

	s, err := Parse([]byte("steps: [{op: iterate, then: {op: add, value: a}}]"))
	require.NoError(t, err)

	rep, err := Run(context.Background(), s, logger.Nop())
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)
	assert.Empty(t, rep.Results[0].Output)
	assert.Empty(t, rep.Results[0].Err)
	assert.Equal(t, []string{"a"}, rep.Final)
}
