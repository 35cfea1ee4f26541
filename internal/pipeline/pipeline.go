package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwenda/pdf-catalog/internal/analyzer"
	"github.com/mwenda/pdf-catalog/internal/extractor"
	"github.com/mwenda/pdf-catalog/internal/repository"
	"github.com/mwenda/pdf-catalog/internal/storage"
	"github.com/mwenda/pdf-catalog/internal/utils"
)

// Pipeline sequences extraction, analysis and storage for one document.
// Each step either succeeds or ends the run; nothing is retried.
type Pipeline struct {
	extractor extractor.Extractor
	analyzer  analyzer.Analyzer
	repo      repository.Repository
	archive   storage.Storage // nil disables archival
	logger    *utils.Logger
}

func New(ext extractor.Extractor, an analyzer.Analyzer, repo repository.Repository, archive storage.Storage, logger *utils.Logger) *Pipeline {
	return &Pipeline{
		extractor: ext,
		analyzer:  an,
		repo:      repo,
		archive:   archive,
		logger:    logger,
	}
}

// Run processes exactly one document and returns the identifier of the row
// it inserted. The path is checked before any external call; a missing file
// aborts the run with no side effects.
func (p *Pipeline) Run(ctx context.Context, path string) (int64, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("file does not exist: %s", path)
	}

	text, err := p.extractor.ExtractFile(path)
	if err != nil {
		p.logger.Error("Failed to extract text", "error", err, "path", path)
		return 0, fmt.Errorf("failed to extract text: %w", err)
	}
	p.logger.Info("Extracted text", "path", path, "text_length", len(text))

	// Empty text is fine: image-only documents still get analyzed.
	record, err := p.analyzer.Analyze(ctx, text)
	if err != nil {
		p.logger.Error("Failed to analyze document", "error", err, "path", path)
		return 0, fmt.Errorf("failed to analyze document: %w", err)
	}
	p.logger.Info("Analyzed document", "title", record.Title, "category", record.Category, "tags", len(record.Tags))

	if err := p.repo.EnsureSchema(ctx); err != nil {
		p.logger.Error("Failed to ensure schema", "error", err)
		return 0, fmt.Errorf("failed to ensure schema: %w", err)
	}

	filename := filepath.Base(path)
	id, err := p.repo.Insert(ctx, record, filename)
	if err != nil {
		p.logger.Error("Failed to insert document", "error", err, "filename", filename)
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}
	p.logger.Info("Stored document", "id", id, "filename", filename)

	// The row is already committed: an archival failure is logged, not fatal.
	if p.archive != nil {
		if err := p.archiveOriginal(ctx, id, path, filename); err != nil {
			p.logger.Warn("Failed to archive original file", "error", err, "id", id)
		}
	}

	return id, nil
}

func (p *Pipeline) archiveOriginal(ctx context.Context, id int64, path, filename string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file for archival: %w", err)
	}

	key := fmt.Sprintf("documents/%d/%s", id, filename)
	return p.archive.Upload(ctx, key, data, contentTypeFor(filename))
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
