package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deanrtaylor1/partsdiscovery/lexer"
)

// ErrNoCatalogs is returned when a directory holds no catalog files
var ErrNoCatalogs = errors.New("no catalog files found")

// ErrDuplicateCatalog is returned when two files of a directory share a display name
var ErrDuplicateCatalog = errors.New("duplicate catalog name")

// PartCatalog is one catalog of part descriptions reduced to its words
type PartCatalog struct {
	Name  string
	Path  string
	Words []string
}

// GetCatalogWords returns the catalog words in the order they were read
func (c PartCatalog) GetCatalogWords() []string {
	return c.Words
}

// FromText tokenizes plain text into a catalog. Words are stemmed with the
// snowball stemmer for lang unless lang is empty.
func FromText(name string, text string, lang string) (PartCatalog, error) {
	words, err := lexer.Tokenize(text, lang)
	if err != nil {
		return PartCatalog{}, fmt.Errorf("error tokenizing catalog %q: %w", name, err)
	}
	return PartCatalog{Name: name, Words: words}, nil
}

// FromHTML extracts the text content of a html document and tokenizes it
func FromHTML(name string, htmlContent string, lang string) (PartCatalog, error) {
	return FromText(name, lexer.ParseHtmlTextContent(htmlContent), lang)
}

// LoadFile reads a single .txt or .html catalog
func LoadFile(path string, lang string) (PartCatalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return PartCatalog{}, fmt.Errorf("error reading catalog file: %w", err)
	}

	name := FileToName(path)
	var c PartCatalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		c, err = FromHTML(name, string(content), lang)
	default:
		c, err = FromText(name, string(content), lang)
	}
	if err != nil {
		return PartCatalog{}, err
	}
	c.Path = path
	return c, nil
}

// LoadDirectory reads every catalog file in dirPath in file name order.
// Sub directories and files with other extensions are skipped. Catalogs are
// keyed by name, so two files with the same FileToName fail with ErrDuplicateCatalog.
func LoadDirectory(dirPath string, lang string) ([]PartCatalog, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog directory: %w", err)
	}

	var catalogs []PartCatalog
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !IsCatalogFile(entry.Name()) {
			continue
		}
		c, err := LoadFile(filepath.Join(dirPath, entry.Name()), lang)
		if err != nil {
			return nil, err
		}
		if other, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("%q from %s and %s: %w", c.Name, other, entry.Name(), ErrDuplicateCatalog)
		}
		seen[c.Name] = entry.Name()
		catalogs = append(catalogs, c)
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("%s: %w", dirPath, ErrNoCatalogs)
	}
	return catalogs, nil
}

var catalogExtensions = map[string]bool{
	".txt": true, ".text": true, ".html": true, ".htm": true,
}

// IsCatalogFile reports whether the file name has a catalog extension
func IsCatalogFile(name string) bool {
	return catalogExtensions[strings.ToLower(filepath.Ext(name))]
}

// FileToName turns a catalog file path into a display name,
// "catalogs/front-brake_pads.txt" becomes "Front Brake Pads"
func FileToName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	// Replace hyphens and underscores with spaces
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")

	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(strings.Join(strings.Fields(base), " "))
}
