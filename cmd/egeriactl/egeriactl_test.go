package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/config"
)

func testCommand(t *testing.T, configYAML string) *cobra.Command {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", path, "")
	cmd.Flags().String("log-level", "error", "")
	cmd.Flags().String("target", "", "")
	return cmd
}

func TestDatabaseURLWithMigrationsTable(t *testing.T) {
	assert.Equal(t,
		"postgres://localhost/surveys?x-migrations-table=egeria_schema_migrations",
		databaseURLWithMigrationsTable("postgres://localhost/surveys"))
	assert.Equal(t,
		"postgres://localhost/surveys?sslmode=disable&x-migrations-table=egeria_schema_migrations",
		databaseURLWithMigrationsTable("postgres://localhost/surveys?sslmode=disable"))
}

func TestSelectTargets(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cmd := testCommand(t, `
catalog_targets:
  - name: warehouse
    database_url: postgres://egeria@localhost/surveys
  - name: local
    database_url: sqlite:/tmp/surveys.db
`)

	targets, err := selectTargets(cmd)
	require.NoError(t, err)
	assert.Len(t, targets, 2)

	pg := postgresTargets(targets)
	require.Len(t, pg, 1)
	assert.Equal(t, "warehouse", pg[0].Name)

	require.NoError(t, cmd.Flags().Set("target", "local"))
	targets, err = selectTargets(cmd)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Empty(t, postgresTargets(targets))

	require.NoError(t, cmd.Flags().Set("target", "missing"))
	_, err = selectTargets(cmd)
	assert.ErrorContains(t, err, `unknown catalog target "missing"`)
}

func TestShowConfiguration(t *testing.T) {
	cmd := testCommand(t, `
platform_url: https://localhost:9443
server_name: qs-view-server
user_id: erinoverview
password: pa55word
`)

	var out bytes.Buffer
	require.NoError(t, showConfiguration(cmd, &out, "text"))
	assert.Contains(t, out.String(), "qs-view-server")
	assert.NotContains(t, out.String(), "pa55word")

	out.Reset()
	require.NoError(t, showConfiguration(cmd, &out, "json"))
	assert.Contains(t, out.String(), `"attributes"`)

	assert.ErrorContains(t, showConfiguration(cmd, &out, "yaml"), "unknown output format")
}

func TestExecuteQuery(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/servers/qs-view-server/open-metadata/access-services/digital-architecture/users/erinoverview/connections/by-search-string", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0", r.URL.Query().Get("startFrom"))
		assert.Equal(t, "25", r.URL.Query().Get("pageSize"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"relatedHTTPCode":200,"elements":[{"elementHeader":{"guid":"c-1"},"connectionProperties":{"qualifiedName":"Connection:surveys"}}]}`))
	}).Methods("POST")
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	cmd := testCommand(t, `
platform_url: `+ts.URL+`
server_name: qs-view-server
user_id: erinoverview
page_size: 25
`)
	addPagingFlags(cmd)

	var out bytes.Buffer
	err := executeQuery(cmd, &out, func(q *queryEnv) (any, error) {
		assert.Equal(t, 25, q.pageSize)
		return findConnections(q, "")
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"guid": "c-1"`)
	assert.Contains(t, out.String(), "Connection:surveys")
}

func TestExecuteQueryRejectsInvalidConfiguration(t *testing.T) {
	cmd := testCommand(t, "server_name: qs-view-server\n")
	err := executeQuery(cmd, &bytes.Buffer{}, func(q *queryEnv) (any, error) {
		t.Fatal("query must not run")
		return nil, nil
	})
	assert.ErrorContains(t, err, "platform_url")
}

type fakeOrigin struct {
	failures int32
	calls    int32
}

func (f *fakeOrigin) PlatformOrigin(ctx context.Context, userID string) (string, error) {
	if atomic.AddInt32(&f.calls, 1) <= f.failures {
		return "", errors.New("connection refused")
	}
	return "Egeria OMAG Server Platform", nil
}

func TestWaitForPlatform(t *testing.T) {
	ok := &fakeOrigin{failures: 2}
	require.NoError(t, waitForPlatform(context.Background(), ok, "garygeeke", 5, time.Millisecond))
	assert.Equal(t, int32(3), ok.calls)

	down := &fakeOrigin{failures: 100}
	err := waitForPlatform(context.Background(), down, "garygeeke", 3, time.Millisecond)
	assert.ErrorContains(t, err, "not ready after 3 attempts")
	assert.ErrorContains(t, err, "connection refused")
}

type countingTrigger struct {
	n int32
}

func (c *countingTrigger) Trigger() {
	atomic.AddInt32(&c.n, 1)
}

func TestForwardEvents(t *testing.T) {
	dir := t.TempDir()
	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = watcher.Close() })
	require.NoError(t, watcher.Add(dir))

	ctx, cancel := context.WithCancel(context.Background())
	trig := &countingTrigger{}
	done := make(chan error, 1)
	go func() { done <- forwardEvents(ctx, watcher, trig, zap.NewNop()) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.log"), []byte("{}\n"), 0o600))
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&trig.n) > 0 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchTreeCoversSubdirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "landing", "weekly")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "landing", "old.log"), []byte("{}\n"), 0o600))

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = watcher.Close() })
	require.NoError(t, watchTree(watcher, dir))
	assert.ElementsMatch(t, []string{dir, filepath.Join(dir, "landing"), nested}, watcher.WatchList())

	ctx, cancel := context.WithCancel(context.Background())
	trig := &countingTrigger{}
	done := make(chan error, 1)
	go func() { done <- forwardEvents(ctx, watcher, trig, zap.NewNop()) }()

	require.NoError(t, os.WriteFile(filepath.Join(nested, "profile.log"), []byte("{}\n"), 0o600))
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&trig.n) > 0 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestForwardEventsWatchesNewDirectories(t *testing.T) {
	dir := t.TempDir()
	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = watcher.Close() })
	require.NoError(t, watchTree(watcher, dir))

	ctx, cancel := context.WithCancel(context.Background())
	trig := &countingTrigger{}
	done := make(chan error, 1)
	go func() { done <- forwardEvents(ctx, watcher, trig, zap.NewNop()) }()

	sub := filepath.Join(dir, "landing")
	require.NoError(t, os.Mkdir(sub, 0o755))
	assert.Eventually(t, func() bool { return slices.Contains(watcher.WatchList(), sub) }, 5*time.Second, 10*time.Millisecond)

	before := atomic.LoadInt32(&trig.n)
	require.NoError(t, os.WriteFile(filepath.Join(sub, "profile.log"), []byte("{}\n"), 0o600))
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&trig.n) > before }, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestHarvestCommandsMigrateByDefault(t *testing.T) {
	for _, cmd := range []*cobra.Command{harvestRunCmd, harvestServeCmd, harvestWatchCmd} {
		flag := cmd.Flags().Lookup("no-migrate")
		require.NotNil(t, flag, cmd.Name())
		assert.Equal(t, "false", flag.DefValue, cmd.Name())
	}
}
