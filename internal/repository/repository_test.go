package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mwenda/pdf-catalog/internal/db"
	"github.com/mwenda/pdf-catalog/internal/models"
	"github.com/mwenda/pdf-catalog/internal/repository"
)

func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()

	database, err := db.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return repository.NewRepository(database)
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))
}

func TestInsertAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.EnsureSchema(ctx))

	record := models.AnalysisRecord{
		Title:    "Annual Report 2025",
		Source:   "ACME Corp",
		Category: "Business",
		Subtopic: "Finance",
		Author:   "J. Smith",
		Tags:     []string{"finance", "annual"},
		Summary:  "Revenue grew.",
	}

	id, err := repo.Insert(ctx, record, "report.pdf")
	require.NoError(t, err)
	require.Positive(t, id)

	doc, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, doc)

	require.Equal(t, id, doc.ID)
	require.Equal(t, "report.pdf", doc.Filename)
	require.Equal(t, "Annual Report 2025", doc.Title)
	require.Equal(t, "ACME Corp", doc.Source)
	require.Equal(t, "Business", doc.Category)
	require.Equal(t, "Finance", doc.Subtopic)
	require.Equal(t, "J. Smith", doc.Author)
	require.Equal(t, "finance,annual", doc.Tags)
	require.Equal(t, "Revenue grew.", doc.Summary)
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.EnsureSchema(ctx))

	first, err := repo.Insert(ctx, models.FallbackRecord(), "a.pdf")
	require.NoError(t, err)
	second, err := repo.Insert(ctx, models.FallbackRecord(), "b.pdf")
	require.NoError(t, err)

	require.Greater(t, second, first)
}

func TestInsertEmptyTags(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.EnsureSchema(ctx))

	id, err := repo.Insert(ctx, models.FallbackRecord(), "c.pdf")
	require.NoError(t, err)

	doc, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "", doc.Tags)
	require.Equal(t, models.DefaultField, doc.Title)
	require.Equal(t, models.DefaultSummary, doc.Summary)
}

func TestGetByIDMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.EnsureSchema(ctx))

	doc, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	require.Nil(t, doc)
}
