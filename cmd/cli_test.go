package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/netrun/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, home, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	dir := filepath.Join(home, ".netrun")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o600))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestExecRunsEachArgumentAsALine(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "exec", "hostname", "connect n00dles", "hostname")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"netrun v" + version.Version,
		"home",
		"Connected to n00dles",
		"n00dles",
	}, strings.Split(strings.TrimSpace(stdout), "\n"))
}

func TestExecQuietSkipsBanner(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "exec", "-q", "hostname")
	require.NoError(t, err)
	assert.Equal(t, "home\n", stdout)
}

func TestExecFastForwardsActions(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "exec", "-q", "analyze", "hostname")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Analyzing system...")
	assert.Contains(t, stdout, "["+strings.Repeat("|", 50)+"]")
	assert.Contains(t, stdout, "Root Access: YES")
	assert.True(t, strings.HasSuffix(stdout, "home\n"), stdout)
}

func TestExecAnswersContractFromStdin(t *testing.T) {
	stdin := "connect foodnstuff\nrun contract-21342.cct\n41\nls\n"
	stdout, _, err := executeCLI(t, t.TempDir(), stdin, "exec", "-q")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Find Largest Prime Factor")
	assert.Contains(t, stdout, "Contract SUCCESS - Gained $")
	assert.NotContains(t, stdout, "contract-21342.cct")
}

func TestExecWithoutStdinCancelsContracts(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "exec", "-q", "connect foodnstuff", "run contract-21342.cct")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Contract cancelled")
}

func TestJournalListsFinishedActions(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "", "journal")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No actions recorded yet.")

	_, _, err = executeCLI(t, home, "", "exec", "-q", "analyze")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "", "journal")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Action")
	assert.Contains(t, stdout, "analyze")
	assert.Contains(t, stdout, "success")
}

func TestJournalDisabled(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[journal]\npath = \"\"\n")

	_, _, err := executeCLI(t, home, "", "journal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "journal is disabled")
}

func TestPlayLineModePersistsHistory(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "hostname\ncd /nowhere\n", "play")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[home /]> ")
	assert.Contains(t, stdout, "home\n")

	save, err := os.ReadFile(filepath.Join(home, ".netrun", "save.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(save), "hostname")

	stdout, _, err = executeCLI(t, home, "history\n", "play", "--line")
	require.NoError(t, err)
	assert.Contains(t, stdout, "hostname")
	assert.Contains(t, stdout, "cd /nowhere")
}

func TestWorldValidateBuiltIn(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "world", "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "built-in world is valid")
	assert.Contains(t, stdout, "player starts on home")
}

func TestWorldValidateRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bogus: 1\nservers:\n  - hostname: home\n"), 0o600))

	_, _, err := executeCLI(t, t.TempDir(), "", "world", "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid world definition")
}

func TestConfiguredWorldIsUsed(t *testing.T) {
	home := t.TempDir()
	worldPath := filepath.Join(home, "tiny.yaml")
	require.NoError(t, os.WriteFile(worldPath, []byte(strings.Join([]string{
		"servers:",
		"  - hostname: home",
		"    purchased: true",
		"    admin: true",
		"    neighbors: [alpha]",
		"  - hostname: alpha",
		"    ip: 10.9.0.1",
		"",
	}, "\n")), 0o600))
	writeConfig(t, home, "[world]\npath = \""+filepath.ToSlash(worldPath)+"\"\n")

	stdout, _, err := executeCLI(t, home, "", "exec", "-q", "scan")
	require.NoError(t, err)
	assert.Contains(t, stdout, "alpha")
	assert.Contains(t, stdout, "10.9.0.1")
}

func TestTranscriptRoundTrip(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, "transcripts")
	t.Setenv("NETRUN_TRANSCRIPT_DIR", dir)

	_, _, err := executeCLI(t, home, "", "exec", "-q", "hostname", "connect nowhere")
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(dir, "*.jsonl.zst"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	stdout, _, err := executeCLI(t, home, "", "transcript", "show", files[0])
	require.NoError(t, err)
	assert.Equal(t, "home\nHost not found\n", stdout)
}
