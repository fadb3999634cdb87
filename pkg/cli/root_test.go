package cli

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllCommandsRegistered ensures every expected CLI command and subcommand
// is registered on the root cobra command tree. If a new command is added to
// the source but not to the expected list (or vice versa), this test fails.
func TestAllCommandsRegistered(t *testing.T) {
	root := Root()

	expectedTopLevel := []string{
		"agent",
		"embed",
		"files",
		"onboarding",
		"search",
		"serve",
		"status",
		"tool",
		"upload",
		"version",
	}

	gotTopLevel := commandNames(root)
	assertEqualSorted(t, "root", expectedTopLevel, gotTopLevel)

	// Subcommands for each parent that has them.
	expectedSubcommands := map[string][]string{
		"agent": {
			"create",
			"delete",
			"export",
			"import",
			"list",
			"show",
		},
		"tool": {
			"list",
			"register",
		},
	}

	for _, cmd := range root.Commands() {
		expected, ok := expectedSubcommands[cmd.Name()]
		if !ok {
			// Leaf commands like "serve" and "version" have no
			// subcommands to verify.
			continue
		}
		got := commandNames(cmd)
		assertEqualSorted(t, cmd.Name(), expected, got)
	}
}

// commandNames returns the sorted names of a command's direct children.
func commandNames(cmd *cobra.Command) []string {
	children := cmd.Commands()
	names := make([]string, 0, len(children))
	for _, c := range children {
		names = append(names, c.Name())
	}
	sort.Strings(names)
	return names
}

// assertEqualSorted compares two string slices after sorting.
func assertEqualSorted(t *testing.T, context string, expected, got []string) {
	t.Helper()

	sortedExpected := make([]string, len(expected))
	copy(sortedExpected, expected)
	sort.Strings(sortedExpected)

	sortedGot := make([]string, len(got))
	copy(sortedGot, got)
	sort.Strings(sortedGot)

	if len(sortedExpected) != len(sortedGot) {
		t.Errorf("[%s] command count mismatch: expected %d, got %d\n  expected: %v\n  got:      %v",
			context, len(sortedExpected), len(sortedGot), sortedExpected, sortedGot)
		return
	}

	for i := range sortedExpected {
		if sortedExpected[i] != sortedGot[i] {
			t.Errorf("[%s] command mismatch at index %d: expected %q, got %q\n  expected: %v\n  got:      %v",
				context, i, sortedExpected[i], sortedGot[i], sortedExpected, sortedGot)
			return
		}
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("STUDIO_TEST_ENV_VALUE=from-file\n"), 0o600))

	t.Setenv("STUDIO_TEST_ENV_VALUE", "")
	require.NoError(t, os.Unsetenv("STUDIO_TEST_ENV_VALUE"))
	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("STUDIO_TEST_ENV_VALUE"))

	assert.NoError(t, loadEnvFile(filepath.Join(dir, "missing.env")), "a missing file is ignored")
	assert.NoError(t, loadEnvFile(""))
}
