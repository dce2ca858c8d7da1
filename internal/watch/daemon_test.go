package watch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hatethatcode/siteconf/internal/eventstore"
)

const validConfig = `site:
  name: Test Blog
  author: Tester
  url: https://example.com
pagination: 5
`

const changedConfig = `site:
  name: Renamed Blog
  author: Tester
  url: https://example.com
pagination: 5
`

const brokenConfig = `site:
  author: Tester
`

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestDaemon(t *testing.T, configPath string) *Daemon {
	t.Helper()
	d, err := NewDaemon(configPath, Options{
		HistoryPath: filepath.Join(t.TempDir(), "history.db"),
	})
	require.NoError(t, err)
	return d
}

func eventTypes(events []eventstore.Event) []eventstore.EventType {
	types := make([]eventstore.EventType, len(events))
	for i, e := range events {
		types[i] = e.Type()
	}
	return types
}

func TestDaemonStartRecordsInitialLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "siteconf.yaml")
	writeConfig(t, configPath, validConfig)

	d := newTestDaemon(t, configPath)
	ctx := context.Background()
	require.NoError(t, d.Start(ctx))
	defer func() { require.NoError(t, d.Stop(ctx)) }()

	cfg := d.Config()
	require.NotNil(t, cfg)
	assert.Equal(t, "Test Blog", cfg.Site.Name)

	events, err := d.store.GetByConfigPath(ctx, configPath)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, eventstore.EventConfigLoaded, events[0].Type())
	assert.Equal(t, cfg.Snapshot(), events[0].Metadata()["snapshot"])
}

func TestDaemonStartFailsOnInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "siteconf.yaml")
	writeConfig(t, configPath, brokenConfig)

	d := newTestDaemon(t, configPath)
	err := d.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initial configuration load failed")
}

func TestDaemonReloadAppliesNewConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "siteconf.yaml")
	writeConfig(t, configPath, validConfig)

	d := newTestDaemon(t, configPath)
	ctx := context.Background()
	require.NoError(t, d.Start(ctx))
	defer func() { require.NoError(t, d.Stop(ctx)) }()
	oldSnap := d.Config().Snapshot()

	writeConfig(t, configPath, changedConfig)
	d.reload(ctx)

	cfg := d.Config()
	assert.Equal(t, "Renamed Blog", cfg.Site.Name)
	assert.NotEqual(t, oldSnap, cfg.Snapshot())

	events, err := d.store.GetByConfigPath(ctx, configPath)
	require.NoError(t, err)
	assert.Equal(t, []eventstore.EventType{
		eventstore.EventConfigLoaded,
		eventstore.EventConfigReloaded,
		eventstore.EventSnapshotChanged,
	}, eventTypes(events))

	var change eventstore.SnapshotChange
	require.NoError(t, json.Unmarshal(events[2].Payload(), &change))
	assert.Equal(t, oldSnap, change.OldSnapshot)
	assert.Equal(t, cfg.Snapshot(), change.NewSnapshot)
}

func TestDaemonReloadKeepsConfigOnInvalidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "siteconf.yaml")
	writeConfig(t, configPath, validConfig)

	d := newTestDaemon(t, configPath)
	ctx := context.Background()
	require.NoError(t, d.Start(ctx))
	defer func() { require.NoError(t, d.Stop(ctx)) }()

	writeConfig(t, configPath, brokenConfig)
	d.reload(ctx)

	cfg := d.Config()
	require.NotNil(t, cfg)
	assert.Equal(t, "Test Blog", cfg.Site.Name)

	events, err := d.store.GetByConfigPath(ctx, configPath)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, eventstore.EventValidationFailed, events[1].Type())
	assert.NotEmpty(t, events[1].Metadata()["error"])
	assert.NotEmpty(t, events[1].Metadata()["event_id"])
}

func TestDaemonReloadUnchangedRecordsNoEvent(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "siteconf.yaml")
	writeConfig(t, configPath, validConfig)

	d := newTestDaemon(t, configPath)
	ctx := context.Background()
	require.NoError(t, d.Start(ctx))
	defer func() { require.NoError(t, d.Stop(ctx)) }()

	// Rewrite the same content; the snapshot is identical.
	writeConfig(t, configPath, validConfig)
	d.reload(ctx)

	events, err := d.store.GetByConfigPath(ctx, configPath)
	require.NoError(t, err)
	assert.Equal(t, []eventstore.EventType{eventstore.EventConfigLoaded}, eventTypes(events))
}

func TestDaemonKeysEventsByAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "siteconf.yaml")
	writeConfig(t, configPath, validConfig)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	// Relative path, as a user would type it.
	d := newTestDaemon(t, "siteconf.yaml")
	ctx := context.Background()
	require.NoError(t, d.Start(ctx))
	defer func() { require.NoError(t, d.Stop(ctx)) }()

	events, err := d.store.GetByConfigPath(ctx, configPath)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, configPath, events[0].ConfigPath())

	relEvents, err := d.store.GetByConfigPath(ctx, "siteconf.yaml")
	require.NoError(t, err)
	assert.Empty(t, relEvents)
}

func TestDaemonWithoutHistory(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "siteconf.yaml")
	writeConfig(t, configPath, validConfig)

	d, err := NewDaemon(configPath, Options{})
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, d.Start(ctx))
	defer func() { require.NoError(t, d.Stop(ctx)) }()

	writeConfig(t, configPath, changedConfig)
	d.reload(ctx)
	assert.Equal(t, "Renamed Blog", d.Config().Site.Name)
}
