package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// CatalogsDir is where the interactive front end looks for catalog directories
const CatalogsDir = "./catalogs"

const bullet = "○ "

// ToJSON marshals v with indentation for terminal output
func ToJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshalling json: %w", err)
	}
	return string(b), nil
}

// SelectDirectory asks the user to pick one of the catalog directories under root.
// extra options are appended after the directories.
func SelectDirectory(root string, extra ...string) (string, error) {
	directories, err := GetCurrentAvailableCatalogDirectories(root)
	if err != nil {
		return "", err
	}

	options := []string{}
	for _, d := range directories {
		options = append(options, bullet+d)
	}
	for _, e := range extra {
		options = append(options, bullet+e)
	}

	prompt := &survey.Select{
		Message: "Select a catalog directory:",
		Options: options,
	}

	var selectedDirectory string
	if err := survey.AskOne(prompt, &selectedDirectory); err != nil {
		return "", err
	}

	return FormatOption(selectedDirectory), nil
}

// FormatOption removes the bullet point from a prompt option
func FormatOption(option string) string {
	return strings.Replace(option, bullet, "", -1)
}

// GetCurrentAvailableCatalogDirectories lists the sub directories of root,
// creating root if it does not exist yet.
func GetCurrentAvailableCatalogDirectories(root string) ([]string, error) {
	files, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return []string{}, os.MkdirAll(root, 0755)
	}
	if err != nil {
		return nil, fmt.Errorf("error listing catalog directories: %w", err)
	}

	directories := []string{}
	for _, f := range files {
		if f.IsDir() {
			if strings.HasPrefix(f.Name(), ".") {
				continue
			}
			directories = append(directories, filepath.Join(root, f.Name()))
		}
	}

	return directories, nil
}

func CheckDirIsValid(dirName string) (bool, error) {
	info, err := os.Stat(dirName)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil // Directory does not exist
		}
		return false, err // Some other error occurred
	}
	return info.IsDir(), nil
}

const (
	TerminalReset  = "\033[0m"
	TerminalRed    = "\033[31m"
	TerminalGreen  = "\033[32m"
	TerminalYellow = "\033[33m"
	TerminalBlue   = "\033[34m"
	TerminalPurple = "\033[35m"
	TerminalCyan   = "\033[36m"
	TerminalWhite  = "\033[37m"
)
