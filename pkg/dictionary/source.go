package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
)

// Source holds the raw text of one dictionary.
type Source struct {
	Locale string
	Affix  string
	Words  string
}

// LocaleInfo describes a dictionary found in a data directory.
type LocaleInfo struct {
	Locale    string
	AffixPath string
	WordsPath string
	WordCount int
}

// SourcePaths returns the .aff and .dic paths of locale inside dir.
func SourcePaths(dir, locale string) (affPath, dicPath string) {
	return filepath.Join(dir, locale+".aff"), filepath.Join(dir, locale+".dic")
}

// LoadSource reads <dir>/<locale>.aff and <dir>/<locale>.dic.
// Text is NFC-normalized so composed and decomposed input compare equal.
func LoadSource(dir, locale string) (*Source, error) {
	if locale == "" {
		return nil, fmt.Errorf("no locale given for dictionary in %s", dir)
	}
	affPath, dicPath := SourcePaths(dir, locale)

	affData, err := readValidated(affPath, FormatAffix)
	if err != nil {
		return nil, err
	}
	dicData, err := readValidated(dicPath, FormatWords)
	if err != nil {
		return nil, err
	}

	log.Debugf("Loaded dictionary sources for %s (%d + %d bytes)", locale, len(affData), len(dicData))
	return &Source{
		Locale: locale,
		Affix:  utils.NormalizeText(affData),
		Words:  utils.NormalizeText(dicData),
	}, nil
}

func readValidated(path string, format FileFormat) (string, error) {
	if err := ValidateFileFormat(path, format); err != nil {
		return "", fmt.Errorf("invalid %s: %w", format, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// AvailableLocales scans dir for locales that have both halves on disk.
func AvailableLocales(dir string) ([]LocaleInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.aff"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan for affix files: %w", err)
	}

	var locales []LocaleInfo
	for _, aff := range files {
		locale := strings.TrimSuffix(filepath.Base(aff), filepath.Ext(aff))
		_, dic := SourcePaths(dir, locale)
		if !utils.FileExists(dic) {
			log.Debugf("Skipping %s: no matching word list", aff)
			continue
		}
		locales = append(locales, LocaleInfo{
			Locale:    locale,
			AffixPath: aff,
			WordsPath: dic,
			WordCount: countHeader(dic),
		})
	}

	sort.Slice(locales, func(i, j int) bool {
		return locales[i].Locale < locales[j].Locale
	})
	return locales, nil
}

// countHeader reads the declared word count of a .dic file, 0 if absent.
func countHeader(path string) int {
	file, err := os.Open(path)
	if err != nil {
		log.Warnf("Failed to read word count for %s: %v", path, err)
		return 0
	}
	defer file.Close()

	first, _ := bufio.NewReader(file).ReadString('\n')
	n := 0
	if _, err := fmt.Sscanf(strings.TrimSpace(first), "%d", &n); err != nil {
		return 0
	}
	return n
}
