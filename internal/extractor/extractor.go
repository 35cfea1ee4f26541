package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extractor turns a document file into plain text. An empty string is a
// valid result: image-only documents extract to "" without an error.
type Extractor interface {
	ExtractFile(path string) (string, error)
}

type fileExtractor struct{}

func New() Extractor {
	return fileExtractor{}
}

func (fileExtractor) ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return ExtractPDF(data)
	case ".docx":
		return ExtractDOCX(data)
	case ".txt":
		return ExtractTXT(data)
	default:
		return "", fmt.Errorf("unsupported file type %q (expected .pdf, .docx or .txt)", filepath.Ext(path))
	}
}
