package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds dictionary and config locations relative to the binary.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     configDirFor(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

func configDirFor(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordcheck")
		}
		return filepath.Join(homeDir, ".config", "wordcheck")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordcheck")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordcheck")
	default:
		return filepath.Join(homeDir, ".config", "wordcheck")
	}
}

// ConfigDir returns the platform config directory.
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}

// DataDirCandidates lists where a dictionary directory is looked for, in order:
// an absolute user path, next to the executable, the working directory,
// then the common data folders.
func (pr *PathResolver) DataDirCandidates(userPath string) []string {
	var candidates []string
	if filepath.IsAbs(userPath) {
		return append(candidates, userPath)
	}
	candidates = append(candidates, filepath.Join(pr.executableDir, userPath))
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userPath))
	}
	return append(candidates,
		filepath.Join(pr.executableDir, "data"),
		filepath.Join(filepath.Dir(pr.executableDir), "data"),
		filepath.Join(pr.configDir, "data"),
	)
}

// GetDataDir returns the first candidate holding at least one .aff file.
// When none does, the executable-relative path is returned for error reporting.
func (pr *PathResolver) GetDataDir(userPath string) string {
	candidates := pr.DataDirCandidates(userPath)
	for _, path := range candidates {
		if IsDictionaryDir(path) {
			log.Debugf("Found dictionary directory: %s", path)
			return path
		}
		log.Debugf("Dictionary directory candidate not valid: %s", path)
	}
	return candidates[0]
}

// GetConfigPath returns the config file path, falling back to a writable
// location when the config directory cannot be created.
func (pr *PathResolver) GetConfigPath(filename string) string {
	for _, dir := range []string{pr.configDir, filepath.Join(pr.homeDir, ".wordcheck"), pr.executableDir} {
		if CheckDirStatus(dir).Writable {
			return filepath.Join(dir, filename)
		}
	}
	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath
}

// IsDictionaryDir reports whether path is a directory with at least one .aff file.
func IsDictionaryDir(path string) bool {
	if stat, err := os.Stat(path); err != nil || !stat.IsDir() {
		return false
	}
	matches, err := filepath.Glob(filepath.Join(path, "*.aff"))
	return err == nil && len(matches) > 0
}
