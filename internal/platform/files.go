package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// Export naming
const (
	AppDirName        = "graphdemo"
	MaxExportSuffixes = 1000
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ErrNoFreeName is returned when every candidate export name is taken
var ErrNoFreeName = errors.New("no free file name")

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam+absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	// Try xdg-open first (most common)
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomePicturesDir returns the per-user directory charts are exported to
func GetHomePicturesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Pictures", AppDirName), nil
}

// NextExportPath returns dir/base+ext, or dir/base-N+ext for the smallest N
// that does not exist yet
func NextExportPath(dir, base, ext string) (string, error) {
	base = SanitizeFileName(base)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	candidate := filepath.Join(dir, base+ext)
	for i := 1; i <= MaxExportSuffixes; i++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		} else if err != nil {
			return "", fmt.Errorf("failed to check %s: %w", candidate, err)
		}
		candidate = filepath.Join(dir, base+"-"+strconv.Itoa(i)+ext)
	}
	return "", fmt.Errorf("%s%s in %s: %w", base, ext, dir, ErrNoFreeName)
}

// SanitizeFileName replaces path separators and control characters so the
// result is a single path element
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r < 0x20:
			return '_'
		default:
			return r
		}
	}, name)
	if name == "" || name == "." || name == ".." {
		return "chart"
	}
	return name
}
