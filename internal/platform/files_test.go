package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomePicturesDir(t *testing.T) {
	dir, err := GetHomePicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures directory: %v", err)
	}

	if filepath.Base(dir) != AppDirName {
		t.Errorf("Expected directory to end with '%s', got: %s", AppDirName, dir)
	}
	if filepath.Base(filepath.Dir(dir)) != "Pictures" {
		t.Errorf("Expected directory inside 'Pictures', got: %s", dir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.svg")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	// Check that error contains the expected message
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestNextExportPath(t *testing.T) {
	dir := t.TempDir()

	first, err := NextExportPath(dir, "chart", "svg")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first != filepath.Join(dir, "chart.svg") {
		t.Errorf("Expected chart.svg, got %s", first)
	}

	if err := os.WriteFile(first, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	second, err := NextExportPath(dir, "chart", ".svg")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second != filepath.Join(dir, "chart-1.svg") {
		t.Errorf("Expected chart-1.svg, got %s", second)
	}

	if err := os.WriteFile(second, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	third, _ := NextExportPath(dir, "chart", ".svg")
	if third != filepath.Join(dir, "chart-2.svg") {
		t.Errorf("Expected chart-2.svg, got %s", third)
	}

	// Other extensions are independent
	png, _ := NextExportPath(dir, "chart", "png")
	if png != filepath.Join(dir, "chart.png") {
		t.Errorf("Expected chart.png, got %s", png)
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"chart", "chart"},
		{"a/b\\c:d", "a_b_c_d"},
		{"  spaced  ", "spaced"},
		{"", "chart"},
		{"..", "chart"},
		{"tab\there", "tab_here"},
	}

	for _, test := range tests {
		if got := SanitizeFileName(test.in); got != test.expected {
			t.Errorf("SanitizeFileName(%q) = %q, expected %q", test.in, got, test.expected)
		}
	}
}
