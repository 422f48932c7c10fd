package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/renamer/internal/config"
	"github.com/backmassage/renamer/internal/naming"
)

func TestBuildItems_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, filepath.Join(dir, "a.jpg"))

	cfg := &config.Config{Tags: []string{"I"}, Suffix: "draft", Date: "2024-01-05"}
	items := BuildItems([]string{path}, cfg, nil)

	require.Len(t, items, 1)
	assert.Equal(t, []string{"I"}, items[0].Tags)
	assert.Equal(t, "draft", items[0].Suffix)
	assert.Equal(t, "2024-01-05", items[0].Date)
	assert.Equal(t, int64(1), items[0].SizeBytes)
}

func TestBuildItems_AssignmentOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, filepath.Join(dir, "a.jpg"))

	cfg := &config.Config{Tags: []string{"I"}, Suffix: "draft", Date: "2024-01-05"}
	assignments := map[string]Assignment{
		"a.jpg": {Tags: []string{"A"}, Date: "2024-02-01", Position: "L3"},
	}
	items := BuildItems([]string{path}, cfg, assignments)

	require.Len(t, items, 1)
	assert.Equal(t, []string{"A"}, items[0].Tags)
	assert.Equal(t, "2024-02-01", items[0].Date)
	assert.Equal(t, "L3", items[0].Position)
	assert.Equal(t, "draft", items[0].Suffix, "unset assignment fields keep the config default")
}

func TestBuildItems_DateFromFilename(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, filepath.Join(dir, "IMG_20240105_133700.jpg"))

	items := BuildItems([]string{path}, &config.Config{}, nil)
	require.Len(t, items, 1)
	assert.Equal(t, "2024-01-05", items[0].Date)
}

func TestBuildItems_DateFromModTime(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, filepath.Join(dir, "holiday.jpg"))
	stamp := time.Date(2023, 6, 15, 12, 0, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	items := BuildItems([]string{path}, &config.Config{}, nil)
	require.Len(t, items, 1)
	assert.Equal(t, "2023-06-15", items[0].Date)
}

func TestBuildItems_DatePrecedence(t *testing.T) {
	// A filename date must not override an explicitly configured one.
	dir := t.TempDir()
	path := touch(t, filepath.Join(dir, "IMG_20240105_133700.jpg"))

	cfg := &config.Config{Date: "2024-03-03"}
	items := BuildItems([]string{path}, cfg, nil)
	assert.Equal(t, "2024-03-03", items[0].Date)

	assignments := map[string]Assignment{"IMG_20240105_133700.jpg": {Date: "2024-04-04"}}
	items = BuildItems([]string{path}, cfg, assignments)
	assert.Equal(t, "2024-04-04", items[0].Date, "assignment beats config")
}

func TestLoadAssignments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assign.yaml")
	body := "a.jpg:\n  tags: [I, A]\n  suffix: final\nb.jpg:\n  position: L2\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	got, err := LoadAssignments(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"I", "A"}, got["a.jpg"].Tags)
	assert.Equal(t, "final", got["a.jpg"].Suffix)
	assert.Equal(t, "L2", got["b.jpg"].Position)
}

func TestLoadAssignments_EmptyPath(t *testing.T) {
	got, err := LoadAssignments("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadAssignments_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assign.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a.jpg: [not, a, mapping]\n"), 0o644))

	_, err := LoadAssignments(path)
	require.Error(t, err)
}

// Items built here flow straight into planning; spot-check the join.
func TestBuildItems_PlannerRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, filepath.Join(dir, "a.jpg"))

	cfg := &config.Config{Tags: []string{"I"}, Date: "2024-01-05"}
	items := BuildItems([]string{path}, cfg, nil)
	require.Len(t, items, 1)
	require.NoError(t, naming.Validate(naming.ModeNormal, items[0]))
}
