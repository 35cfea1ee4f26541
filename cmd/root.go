package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwenda/pdf-catalog/internal/analyzer"
	"github.com/mwenda/pdf-catalog/internal/config"
	"github.com/mwenda/pdf-catalog/internal/db"
	"github.com/mwenda/pdf-catalog/internal/extractor"
	"github.com/mwenda/pdf-catalog/internal/pipeline"
	"github.com/mwenda/pdf-catalog/internal/repository"
	"github.com/mwenda/pdf-catalog/internal/storage"
	"github.com/mwenda/pdf-catalog/internal/utils"
)

var filePath string

var rootCmd = &cobra.Command{
	Use:   "pdf-catalog [file]",
	Short: "Ingest a document into a local SQLite catalog",
	Long: `pdf-catalog extracts the text of a PDF, DOCX or TXT file, asks an
OpenAI-compatible model for structured metadata (title, source, category,
subtopic, author, tags, summary) and appends the result as one row in a
local SQLite database.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filePath
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			path = promptForPath()
		}
		if path == "" {
			return fmt.Errorf("no file path given")
		}

		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("file does not exist: %s", path)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger := utils.NewLogger(cfg.LogLevel)

		database, err := db.NewSQLiteDB(cfg.DatabaseFile)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		var archive storage.Storage
		if cfg.ArchiveEnabled() {
			archive, err = storage.NewS3Storage(cfg)
			if err != nil {
				logger.Warn("Archival disabled: failed to initialize S3 storage", "error", err)
				archive = nil
			}
		}

		p := pipeline.New(
			extractor.New(),
			analyzer.NewOpenAIAnalyzer(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, logger),
			repository.NewRepository(database),
			archive,
			logger,
		)

		id, err := p.Run(cmd.Context(), path)
		if err != nil {
			return err
		}

		fmt.Printf("Stored document %d (%s)\n", id, path)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the document file to ingest")
}

func promptForPath() string {
	fmt.Print("Enter the path to the document file: ")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
