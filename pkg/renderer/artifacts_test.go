package renderer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteArtifact(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "jane-resume.pdf")
	testContent := []byte("%PDF-1.7 test")

	err := WriteArtifact(testContent, testFile)
	if err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}

	// Verify content.
	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	if string(data) != string(testContent) {
		t.Errorf("Expected content '%s', got '%s'", testContent, string(data))
	}
}

func TestWriteArtifactCreatesDir(t *testing.T) {
	tmpDir := t.TempDir()
	nestedPath := filepath.Join(tmpDir, "nested", "dir", "jane-portfolio.html")

	err := WriteArtifact([]byte("<html></html>"), nestedPath)
	if err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}

	// Verify file exists.
	_, err = os.Stat(nestedPath)
	if os.IsNotExist(err) {
		t.Error("Artifact was not created in nested directory")
	}
}

func TestWriteArtifactOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "out.json")

	err := WriteArtifact([]byte("first"), testFile)
	if err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}

	err = WriteArtifact([]byte("second"), testFile)
	if err != nil {
		t.Fatalf("Failed to overwrite artifact: %v", err)
	}

	data, _ := os.ReadFile(testFile)
	if string(data) != "second" {
		t.Errorf("Expected overwritten content 'second', got '%s'", string(data))
	}
}
