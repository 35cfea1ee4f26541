package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/mwenda/pdf-catalog/internal/models"
)

const schema = `
	CREATE TABLE IF NOT EXISTS documents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		title TEXT NOT NULL,
		source TEXT,
		category TEXT,
		subtopic TEXT,
		author TEXT,
		tags TEXT,
		summary TEXT
	)
`

type Repository interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, record models.AnalysisRecord, filename string) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.StoredDocument, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// EnsureSchema creates the documents table if it does not exist yet. Safe to
// call on every run.
func (r *repository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

// Insert appends one row and returns the identifier SQLite assigned to it.
// Tags are stored as a single comma-delimited string.
func (r *repository) Insert(ctx context.Context, record models.AnalysisRecord, filename string) (int64, error) {
	query := `
		INSERT INTO documents (filename, title, source, category, subtopic, author, tags, summary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		filename,
		record.Title,
		record.Source,
		record.Category,
		record.Subtopic,
		record.Author,
		strings.Join(record.Tags, ","),
		record.Summary,
	)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *repository) GetByID(ctx context.Context, id int64) (*models.StoredDocument, error) {
	var doc models.StoredDocument

	query := `
		SELECT id, filename, title, source, category, subtopic, author, tags, summary
		FROM documents
		WHERE id = ?
	`

	err := r.db.GetContext(ctx, &doc, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &doc, nil
}
