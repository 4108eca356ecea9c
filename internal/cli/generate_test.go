package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symbolgen/internal/load"
)

// writeInputDir lays out a minimal valid input directory: one renamed
// symbol across two epochs, one symbol without a preview entry.
func writeInputDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	write := func(rel, content string) {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	write(filepath.Join(load.SnapshotsDir, "ios13.cue"), `
availability: {
	iOS:     "13.0"
	macOS:   "10.15"
	tvOS:    "13.0"
	watchOS: "6.0"
}
symbols: ["todo.list", "mystery.symbol"]
`)
	write(filepath.Join(load.SnapshotsDir, "ios14.cue"), `
availability: {
	iOS:     "14.0"
	macOS:   "11.0"
	tvOS:    "14.0"
	watchOS: "7.0"
}
symbols: ["checklist", "mystery.symbol"]
`)
	write(load.AliasesFile, "- from: todo.list\n  to: checklist\n")
	write(load.LegacyAliasesFile, "")
	write(load.LocalizationsFile, "")
	write(load.AsIsFile, "")
	write(load.NamesFile, "todo.list\nchecklist\n")
	write(load.PreviewsFile, "List\nList\n")

	return dir
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// TestGenerate_WritesOutputFile tests a full generation run to a file.
func TestGenerate_WritesOutputFile(t *testing.T) {
	dir := writeInputDir(t)
	out := filepath.Join(t.TempDir(), "Symbols.swift")

	_, stderr, err := runCommand(t, "generate", dir, "-o", out)
	require.NoError(t, err)

	source, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(source), `case checklist = "checklist"`)
	assert.Contains(t, string(source), `renamed: "checklist"`)

	// The missing preview is a warning after successful generation.
	assert.Contains(t, stderr, `no preview entry for "mystery.symbol"`)
}

// TestGenerate_StdoutWithoutOutputFlag tests that the source itself is the
// stdout payload when -o is omitted.
func TestGenerate_StdoutWithoutOutputFlag(t *testing.T) {
	dir := writeInputDir(t)

	stdout, _, err := runCommand(t, "generate", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "public enum Symbol: String, CaseIterable {")
}

// TestGenerate_MissingInputsIsCommandError tests exit code mapping for a
// bad input path.
func TestGenerate_MissingInputsIsCommandError(t *testing.T) {
	_, _, err := runCommand(t, "generate", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// TestGenerate_BrokenChainFails tests that an integrity violation aborts
// with no output file written.
func TestGenerate_BrokenChainFails(t *testing.T) {
	dir := writeInputDir(t)
	// Aliasing the newest name away leaves its history without a successor.
	require.NoError(t, os.WriteFile(filepath.Join(dir, load.AliasesFile),
		[]byte("- from: mystery.symbol\n  to: renamed.elsewhere\n"), 0o644))

	out := filepath.Join(t.TempDir(), "Symbols.swift")
	stdout, _, err := runCommand(t, "generate", dir, "-o", out)

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "BROKEN_RENAME_CHAIN")
	assert.NoFileExists(t, out)
}

// TestValidate_JSONOutput tests the validate command's JSON envelope.
func TestValidate_JSONOutput(t *testing.T) {
	dir := writeInputDir(t)

	stdout, _, err := runCommand(t, "--format", "json", "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"status":"ok"`)
	assert.Contains(t, stdout, `"symbols":2`)
	assert.Contains(t, stdout, `"unresolved_previews":["mystery.symbol"]`)
}
