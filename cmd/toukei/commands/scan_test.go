package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toukei-tech/toukei/pkg/lang"
)

func fixtureProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	source := "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte(source), 0o644))

	return root
}

// scanDocument mirrors the exported JSON payload closely enough for
// assertions.
type scanDocument struct {
	Languages []struct {
		Language string `json:"language"`
		Files    int    `json:"files"`
		Lines    int    `json:"lines"`
	} `json:"languages"`
	Total struct {
		Files int `json:"files"`
		Lines int `json:"lines"`
	} `json:"total"`
}

func TestScanCommand_JSONToFile(t *testing.T) {
	root := fixtureProject(t)
	outPath := filepath.Join(t.TempDir(), "report.json")

	cmd := NewScanCommand()
	cmd.SetArgs([]string{root, "--format", "json", "--output", outPath})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc scanDocument
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Languages, 1)
	assert.Equal(t, "Go", doc.Languages[0].Language)
	assert.Equal(t, 1, doc.Total.Files)
	assert.Equal(t, 5, doc.Total.Lines)
}

func TestScanCommand_AsyncMatchesSync(t *testing.T) {
	root := fixtureProject(t)
	dir := t.TempDir()

	syncPath := filepath.Join(dir, "sync.json")
	asyncPath := filepath.Join(dir, "async.json")

	syncCmd := NewScanCommand()
	syncCmd.SetArgs([]string{root, "--format", "json", "--output", syncPath})
	require.NoError(t, syncCmd.Execute())

	asyncCmd := NewScanCommand()
	asyncCmd.SetArgs([]string{root, "--format", "json", "--output", asyncPath, "--async", "--workers", "4"})
	require.NoError(t, asyncCmd.Execute())

	syncData, err := os.ReadFile(syncPath)
	require.NoError(t, err)

	asyncData, err := os.ReadFile(asyncPath)
	require.NoError(t, err)

	assert.JSONEq(t, string(syncData), string(asyncData))
}

func TestScanCommand_ConfigFileWithFlagOverride(t *testing.T) {
	root := fixtureProject(t)
	dir := t.TempDir()

	configPath := filepath.Join(dir, "toukei.yaml")
	outPath := filepath.Join(dir, "report.csv")

	configBody := "paths:\n  - " + root + "\noutput:\n  format: json\n"
	require.NoError(t, os.WriteFile(configPath, []byte(configBody), 0o644))

	// The flag wins over the file value.
	cmd := NewScanCommand()
	cmd.SetArgs([]string{"--config", configPath, "--format", "csv", "--output", outPath})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Language,Files,Lines")
}

func TestScanCommand_ChartOutput(t *testing.T) {
	root := fixtureProject(t)
	dir := t.TempDir()

	outPath := filepath.Join(dir, "report.json")
	chartPath := filepath.Join(dir, "chart.html")

	cmd := NewScanCommand()
	cmd.SetArgs([]string{root, "--format", "json", "--output", outPath, "--chart", chartPath})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(chartPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Code Distribution by Language")
}

func TestScanCommand_InvalidFormat(t *testing.T) {
	cmd := NewScanCommand()
	cmd.SetArgs([]string{fixtureProject(t), "--format", "xml"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	assert.Error(t, cmd.Execute())
}

func TestScanCommand_CustomRules(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "build.zig"), []byte("const x = 1;\n"), 0o644))

	rulesPath := filepath.Join(t.TempDir(), "rules.yaml")
	rules := "- name: Zig\n  extensions: [zig]\n  line_comment: \"//\"\n"
	require.NoError(t, os.WriteFile(rulesPath, []byte(rules), 0o644))

	outPath := filepath.Join(t.TempDir(), "report.json")

	cmd := NewScanCommand()
	cmd.SetArgs([]string{root, "--rules", rulesPath, "--format", "json", "--output", outPath})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc scanDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Languages, 1)
	assert.Equal(t, "Zig", doc.Languages[0].Language)
}

func TestPrintLanguages(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	printLanguages(lang.NewRegistry(), &out)

	listing := out.String()
	assert.Contains(t, listing, "Go")
	assert.Contains(t, listing, "Python")
	assert.Contains(t, listing, "py")
}
