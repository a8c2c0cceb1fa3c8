package recover_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	recoverpkg "github.com/rskv-p/fpgrowth/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	recoverpkg.SetLogger(&l)
	t.Cleanup(func() { recoverpkg.SetLogger(nil) })
	return &buf
}

func hook(t *testing.T) *[]string {
	t.Helper()
	var calls []string
	recoverpkg.OnPanic = func(service, function string, recovered any) {
		calls = append(calls, service+"."+function)
	}
	t.Cleanup(func() { recoverpkg.OnPanic = nil })
	return &calls
}

func guarded(fail bool) (err error) {
	defer recoverpkg.Guard("mine", "job", &err)
	if fail {
		panic("boom")
	}
	return errors.New("plain error")
}

func TestGuard(t *testing.T) {
	buf := captureLog(t)
	calls := hook(t)

	err := guarded(true)
	require.ErrorIs(t, err, recoverpkg.ErrPanic)
	assert.Contains(t, err.Error(), "mine.job")
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, buf.String(), `"service":"mine"`)
	assert.Contains(t, buf.String(), "panic: boom")
	assert.Equal(t, []string{"mine.job"}, *calls)

	err = guarded(false)
	assert.EqualError(t, err, "plain error")
	assert.Len(t, *calls, 1)
}

func TestSafe(t *testing.T) {
	buf := captureLog(t)
	calls := hook(t)

	assert.NotPanics(t, func() {
		recoverpkg.Safe("worker", func() { panic("bad") })
	})
	assert.Contains(t, buf.String(), `"label":"worker"`)
	assert.Equal(t, []string{"safe.worker"}, *calls)

	ran := false
	recoverpkg.Safe("ok", func() { ran = true })
	assert.True(t, ran)
}
