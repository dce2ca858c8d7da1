package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "siteconf.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("site:\n  name: Test\n"), 0o644))

	var calls atomic.Int32
	w, err := NewWatcher(configPath, func(context.Context) { calls.Add(1) })
	require.NoError(t, err)
	w.debounceTime = 50 * time.Millisecond
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(configPath, []byte("site:\n  name: Changed\n"), 0o644))

	require.Eventually(t, func() bool {
		return calls.Load() >= 1
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "siteconf.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("site:\n  name: Test\n"), 0o644))

	var calls atomic.Int32
	w, err := NewWatcher(configPath, func(context.Context) { calls.Add(1) })
	require.NoError(t, err)
	w.debounceTime = 200 * time.Millisecond
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(configPath, []byte("site:\n  name: Burst\n"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return calls.Load() >= 1
	}, 5*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "siteconf.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("site:\n  name: Test\n"), 0o644))

	var calls atomic.Int32
	w, err := NewWatcher(configPath, func(context.Context) { calls.Add(1) })
	require.NoError(t, err)
	w.debounceTime = 50 * time.Millisecond
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("unrelated"), 0o644))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "siteconf.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("site:\n  name: Test\n"), 0o644))

	w, err := NewWatcher(configPath, func(context.Context) {})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	w.Stop()
	w.Stop()
}
