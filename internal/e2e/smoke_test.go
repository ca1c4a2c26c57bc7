package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runCS(t, binaryPath, home, "", "deck", "0", "4")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "4 cards in 1 streaks")
	assert.Contains(t, stdout, "order: 0 1 2 3")

	stdout, stderr, err = runCS(t, binaryPath, home, "\n", "sort", "0", "5")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "Pile of 5 cards is already shuffled.\n\n", stdout)

	stdout, stderr, err = runCS(t, binaryPath, home, strings.Repeat("\n", 500), "sort", "6", "--seed", "3")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.True(t, strings.HasSuffix(stdout, "\n"))
	assert.Contains(t, stdout, "shuffled")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "cs-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/cs")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build cs binary: %s", string(output))
	return binaryPath
}

func runCS(t *testing.T, binaryPath, home, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
