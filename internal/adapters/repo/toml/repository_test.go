package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/netrun/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, savePath string) *SessionRepository {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	config := viper.New()
	config.Set("save.path", savePath)

	repo, err := NewSessionRepository(config)
	require.NoError(t, err)
	return repo
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	savePath := filepath.Join(t.TempDir(), "save.toml")
	repo := newTestRepository(t, savePath)
	repo.now = func() time.Time { return time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC) }

	state := domain.TerminalState{
		History:          []string{"scan-analyze 2", "connect n00dles; analyze"},
		CurrentDirectory: "scripts/",
	}
	require.NoError(t, repo.Save(context.Background(), state))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, state, got)

	data, err := os.ReadFile(savePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "saved_at = '2026-02-14T11:00:00Z'")
}

func TestSessionRepositoryMissingFileLoadsEmptyState(t *testing.T) {
	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "save.toml"))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TerminalState{}, got)
}

func TestSessionRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewSessionRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.TerminalState{History: []string{"ls"}}))

	savePath := filepath.Join(homeDir, ".netrun", "save.toml")
	assert.Equal(t, savePath, repo.Path())
	info, err := os.Stat(savePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSessionRepositoryReadsPathFromConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	custom := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.MkdirAll(filepath.Join(homeDir, ".netrun"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(homeDir, ".netrun", "config.toml"),
		[]byte("[save]\npath = '"+custom+"'\n"), 0o600))

	repo, err := NewSessionRepository(viper.New())
	require.NoError(t, err)
	assert.Equal(t, custom, repo.Path())
}

func TestSessionRepositoryMalformedTOMLReturnsError(t *testing.T) {
	savePath := filepath.Join(t.TempDir(), "save.toml")
	require.NoError(t, os.WriteFile(savePath, []byte("terminal = ["), 0o600))
	repo := newTestRepository(t, savePath)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode save file")
}

func TestSessionRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	savePath := filepath.Join(t.TempDir(), "save.toml")
	require.NoError(t, os.WriteFile(savePath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"[terminal]",
		"cwd = ''",
		"",
	}, "\n")), 0o600))
	repo := newTestRepository(t, savePath)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported save schema version")
}

func TestSessionRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	repo := newTestRepository(t, filepath.Join(t.TempDir(), "save.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.TerminalState{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSessionRepositoryConcurrentSavesAcrossInstances(t *testing.T) {
	savePath := filepath.Join(t.TempDir(), "save.toml")
	repoA := newTestRepository(t, savePath)
	repoB := newTestRepository(t, savePath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *SessionRepository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.TerminalState{History: []string{prefix + strconv.Itoa(i)}})
		}
	}
	go write(repoA, "a-")
	go write(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	got, err := repoA.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got.History, 1)
	assert.Contains(t, []string{"a-49", "b-49"}, got.History[0])
}
