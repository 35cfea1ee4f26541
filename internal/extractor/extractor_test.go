package extractor

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestExtractFileTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("hello world\r\n\r\nsecond line\r\n"), 0o644); err != nil {
		t.Fatalf("failed to write sample file: %v", err)
	}

	text, err := New().ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile returned error: %v", err)
	}

	want := "hello world\nsecond line"
	if text != want {
		t.Errorf("got %q, want %q", text, want)
	}
}

func TestExtractFileMissing(t *testing.T) {
	_, err := New().ExtractFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExtractFileUnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("failed to write sample file: %v", err)
	}

	_, err := New().ExtractFile(path)
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestExtractTXTEmpty(t *testing.T) {
	text, err := ExtractTXT(nil)
	if err != nil {
		t.Fatalf("ExtractTXT returned error: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

func TestExtractTXTBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("with bom")...)

	text, err := ExtractTXT(data)
	if err != nil {
		t.Fatalf("ExtractTXT returned error: %v", err)
	}
	if text != "with bom" {
		t.Errorf("got %q, want %q", text, "with bom")
	}
}

func TestExtractPDFInvalid(t *testing.T) {
	_, err := ExtractPDF([]byte("not a pdf"))
	if err == nil {
		t.Fatal("expected error for invalid PDF data")
	}
}

func TestExtractDOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	_, err = f.Write([]byte(`<?xml version="1.0"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body><w:p><w:r><w:t>Hello</w:t></w:r><w:r><w:t> docx</w:t></w:r></w:p></w:body></w:document>`))
	if err != nil {
		t.Fatalf("failed to write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}

	text, err := ExtractDOCX(buf.Bytes())
	if err != nil {
		t.Fatalf("ExtractDOCX returned error: %v", err)
	}
	if text != "Hello docx" {
		t.Errorf("got %q, want %q", text, "Hello docx")
	}
}

func TestExtractDOCXInvalid(t *testing.T) {
	_, err := ExtractDOCX([]byte("not a zip"))
	if err == nil {
		t.Fatal("expected error for invalid DOCX data")
	}
}
