// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/exam-extract/pkg/types"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()

	store, err := NewStore(types.CatalogConfig{OutputDir: dir, MaxResults: 20})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, dir
}

func sampleManifest(runID string) types.RunManifest {
	return types.RunManifest{
		RunID:      runID,
		PDFPath:    "papers/olympiad-2026.pdf",
		Method:     types.MethodFitz,
		StartedAt:  time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 2, 3, 10, 0, 8, 0, time.UTC),
		Pages:      2,
		Questions:  3,
		Images:     3,
	}
}

func sampleRecords() []types.QuestionRecord {
	return []types.QuestionRecord{
		{
			Question:     "1. What is the area of the shaded triangle?",
			PageNumber:   1,
			Images:       "images/page_1_image_1.png",
			OptionImages: []string{"images/page_1_image_2.png"},
		},
		{
			Question:     "2. Which net folds into a cube?",
			PageNumber:   1,
			Images:       "images/page_1_image_3.png",
			OptionImages: []string{},
		},
		{
			Question:     "3. Solve for x in the given equation.",
			PageNumber:   2,
			Images:       "",
			OptionImages: []string{},
		},
	}
}

func recordSampleRun(t *testing.T, store *Store, runID string) {
	t.Helper()
	err := store.RecordRun(context.Background(), sampleManifest(runID), sampleRecords())
	require.NoError(t, err)
}

func TestRecordRunAndSearch(t *testing.T) {
	store, _ := testStore(t)
	recordSampleRun(t, store, "run-a")

	results, err := store.Search(context.Background(), QueryOptions{Query: "triangle"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, "run-a", got.RunID)
	assert.Equal(t, "papers/olympiad-2026.pdf", got.PDFPath)
	assert.Equal(t, 1, got.PageNumber)
	assert.Equal(t, "images/page_1_image_1.png", got.Images)
	assert.Equal(t, []string{"images/page_1_image_2.png"}, got.OptionImages)
}

func TestSearchByRunOnly(t *testing.T) {
	store, _ := testStore(t)
	recordSampleRun(t, store, "run-a")
	recordSampleRun(t, store, "run-b")

	results, err := store.Search(context.Background(), QueryOptions{RunID: "run-b"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Run-only queries come back in page order.
	assert.Equal(t, 1, results[0].PageNumber)
	assert.Equal(t, 2, results[2].PageNumber)
	for _, r := range results {
		assert.Equal(t, "run-b", r.RunID)
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	store, _ := testStore(t)
	recordSampleRun(t, store, "run-a")

	results, err := store.Search(context.Background(), QueryOptions{RunID: "run-a", MaxResults: 1})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchNoMatch(t *testing.T) {
	store, _ := testStore(t)
	recordSampleRun(t, store, "run-a")

	results, err := store.Search(context.Background(), QueryOptions{Query: "hexagon"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	assert.True(t, QueryOptions{}.IsEmpty())
	assert.False(t, QueryOptions{Query: "cube"}.IsEmpty())
	assert.False(t, QueryOptions{RunID: "run-a"}.IsEmpty())
}

func TestRuns(t *testing.T) {
	store, _ := testStore(t)
	recordSampleRun(t, store, "run-a")

	runs, err := store.Runs(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, "run-a", got.ID)
	assert.Equal(t, "fitz", got.Method)
	assert.Equal(t, 2, got.Pages)
	assert.Equal(t, 3, got.Questions)
	assert.Equal(t, 3, got.Images)
}

func TestReopenKeepsData(t *testing.T) {
	store, dir := testStore(t)
	recordSampleRun(t, store, "run-a")
	require.NoError(t, store.Close())

	reopened, err := NewStore(types.CatalogConfig{OutputDir: dir})
	require.NoError(t, err)
	defer reopened.Close()

	results, err := reopened.Search(context.Background(), QueryOptions{Query: "cube"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestExport(t *testing.T) {
	store, dir := testStore(t)
	recordSampleRun(t, store, "run-a")

	require.NoError(t, store.ExportJSON(context.Background(), QueryOptions{RunID: "run-a"}))
	require.NoError(t, store.ExportYAML(context.Background(), QueryOptions{RunID: "run-a"}))

	jsonData, err := os.ReadFile(filepath.Join(dir, "index", "export.json"))
	require.NoError(t, err)
	var fromJSON []SearchResult
	require.NoError(t, json.Unmarshal(jsonData, &fromJSON))
	assert.Len(t, fromJSON, 3)

	yamlData, err := os.ReadFile(filepath.Join(dir, "index", "export.yaml"))
	require.NoError(t, err)
	var fromYAML []SearchResult
	require.NoError(t, yaml.Unmarshal(yamlData, &fromYAML))
	assert.Len(t, fromYAML, 3)
}
