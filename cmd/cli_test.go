package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortRequiresUniquesCount(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "", "sort")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "uniques count is required")
}

func TestSortRejectsNonNumericCount(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "", "sort", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse count \"x\"")
}

func TestSortRejectsNegativeCount(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "", "sort", "--", "-3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be non-negative")
}

func TestSortEmptyDeckEmitsBareTrailingNewline(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "\n", "sort", "0")

	require.NoError(t, err)
	assert.Equal(t, "\n", stdout)
}

func TestSortSingleCardDeckIsAlreadyShuffled(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "\n", "sort", "1")

	require.NoError(t, err)
	assert.Equal(t, "Pile of 1 cards is already shuffled.\n\n", stdout)
}

func TestSortGroupOnlyDeckIsAlreadyShuffled(t *testing.T) {
	// A single pre-sorted block always collapses to one streak no matter
	// which values the permutation dealt it.
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "\n", "sort", "0", "4")

	require.NoError(t, err)
	assert.Equal(t, "Pile of 4 cards is already shuffled.\n\n", stdout)
}

func TestSortSeededRunTerminates(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, strings.Repeat("\n", 500), "sort", "6", "--seed", "42")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout, "\n"))
	assert.Contains(t, stdout, "shuffled")
}

func TestSortEarlyInputClosureStillExitsCleanly(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "\n\n", "sort", "8", "--seed", "7")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout, "\n"))
}

func TestSortResumeContinuesPersistedSession(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home))

	stdout, _, err := executeCLI(t, home, strings.Repeat("\n", 10), "sort", "--resume")
	require.NoError(t, err)

	want := "1 to B\n" +
		"Pile of 1 cards is already shuffled.\n" +
		"Pile of 1 cards is already shuffled.\n" +
		"(2)\n" +
		"1 to A 1 to B\n" +
		"Pile of 1 cards is already shuffled.\n" +
		"Pile of 1 cards is already shuffled.\n" +
		"\n"
	assert.Equal(t, want, stdout)

	// A finished run clears the persisted session.
	_, err = os.Stat(sessionFixturePath(home))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSortResumeRejectsDeckArguments(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home))

	_, _, err := executeCLI(t, home, "", "sort", "--resume", "4")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--resume takes no deck arguments")
}

func TestSortResumeWithoutSessionFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "", "sort", "--resume")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "session not found")
}

func TestSortSavePersistsInterruptedRun(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "\n", "sort", "7", "--seed", "9", "--save")
	require.NoError(t, err)

	if strings.Contains(stdout, "shuffled") {
		t.Skip("seeded deck dealt already sorted")
	}

	_, err = os.Stat(sessionFixturePath(home))
	assert.NoError(t, err)
}

func TestDeckPlainOutput(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "", "deck", "0", "4")

	require.NoError(t, err)
	assert.Contains(t, stdout, "4 cards in 1 streaks")
	assert.Contains(t, stdout, "[0..4)")
	assert.Contains(t, stdout, "order: 0 1 2 3")
}

func TestDeckJSONOutput(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "", "deck", "3", "2", "--seed", "5", "--json")

	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Cards\": 5")
	assert.Contains(t, stdout, "\"Streaks\"")
}

func TestStatusWithoutSessionFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "", "status")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "session not found")
}

func TestStatusShowsPersistedSession(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home))

	stdout, _, err := executeCLI(t, home, "", "status")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Card Sorting Session")
	assert.Contains(t, stdout, "cards: 4")
	assert.Contains(t, stdout, "queued: (2)")
}

func TestStatusJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeSessionFixture(home))

	stdout, _, err := executeCLI(t, home, "", "status", "--json")

	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"TotalCards\": 4")
}

func TestVersionPrints(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

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

func sessionFixturePath(home string) string {
	return filepath.Join(home, ".cardsort", "session.toml")
}

// writeSessionFixture persists a run of deck [1,3,0,2] paused mid-way through
// its second split: hand {2}, pile A holding {3}, and the low child {1,0}
// still queued.
func writeSessionFixture(home string) error {
	configDir := filepath.Join(home, ".cardsort")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	session := `version = 1

[session]
saved_at = "2026-08-29T10:00:00Z"
total = 4
median = 3.0
sorted = []

[[session.hand]]
min = 2
size = 1

[[session.dest_a]]
min = 3
size = 1

[[session.pending]]

[[session.pending.streaks]]
min = 1
size = 1

[[session.pending.streaks]]
min = 0
size = 1
`

	return os.WriteFile(filepath.Join(configDir, "session.toml"), []byte(session), 0o644)
}
