package models

// Defaults applied when the analysis response is missing or invalid.
const (
	DefaultField   = "Unknown"
	DefaultSummary = "No summary available"

	// MaxTags bounds the tags list; anything beyond is discarded.
	MaxTags = 5

	// MaxSummaryWords bounds the stored summary length.
	MaxSummaryWords = 100
)

// AnalysisRecord is the structured metadata derived from one document.
type AnalysisRecord struct {
	Title    string   `json:"title"`
	Source   string   `json:"source"`
	Category string   `json:"category"`
	Subtopic string   `json:"subtopic"`
	Author   string   `json:"author"`
	Tags     []string `json:"tags"`
	Summary  string   `json:"summary"`
}

// FallbackRecord returns an AnalysisRecord with every field at its default.
// It is used whenever the analysis response cannot be parsed.
func FallbackRecord() AnalysisRecord {
	return AnalysisRecord{
		Title:    DefaultField,
		Source:   DefaultField,
		Category: DefaultField,
		Subtopic: DefaultField,
		Author:   DefaultField,
		Tags:     []string{},
		Summary:  DefaultSummary,
	}
}

// StoredDocument is one persisted row: the analysis record plus the source
// filename and the identifier assigned by the database at insert time.
type StoredDocument struct {
	ID       int64  `json:"id" db:"id"`
	Filename string `json:"filename" db:"filename"`
	Title    string `json:"title" db:"title"`
	Source   string `json:"source" db:"source"`
	Category string `json:"category" db:"category"`
	Subtopic string `json:"subtopic" db:"subtopic"`
	Author   string `json:"author" db:"author"`
	Tags     string `json:"tags" db:"tags"`
	Summary  string `json:"summary" db:"summary"`
}
