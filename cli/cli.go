package cli

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/deanrtaylor1/partsdiscovery/corpus"
	"github.com/deanrtaylor1/partsdiscovery/logger"
	"github.com/deanrtaylor1/partsdiscovery/util"
)

//CLI Interface of PartsDiscovery

const (
	optionEnterPath = "Enter a path"
	optionExit      = "Exit"
	optionInspect   = "Inspect catalog"
	optionNewDir    = "New directory"
)

// Prompt functions, replaced in tests
var (
	askOne          = survey.AskOne
	selectDirectory = util.SelectDirectory
)

// Utility function to get a single input from the user
func getSingleInputPrompt(message string, defaultValue string) (string, error) {
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}

	var input string
	err := askOne(prompt, &input)
	return input, err
}

// Ask for the number of keywords until a valid one is entered
func getTopKPrompt() (int, error) {
	for {
		input, err := getSingleInputPrompt("How many keywords per catalog?", "10")
		if err != nil {
			return 0, err
		}
		k, err := ParseTopK(input)
		if err == nil {
			return k, nil
		}
		logger.HandleError(err)
	}
}

// Start the CLI. Each pass picks a directory and scores it; the loop ends on
// Exit or when a prompt fails.
func InitialPrompt() error {
	for {
		selected, err := selectDirectory(util.CatalogsDir, optionEnterPath, optionExit)
		if err != nil {
			return err
		}

		switch selected {
		case optionExit:
			return nil
		case optionEnterPath:
			selected, err = getSingleInputPrompt("Enter a catalog directory:", "")
			if err != nil {
				return err
			}
		}

		if isValid, err := util.CheckDirIsValid(selected); !isValid {
			if err != nil {
				logger.HandleError(err)
			}
			log.Println(util.TerminalRed, "Directory is not valid or does not exist", util.TerminalReset)
			continue
		}

		k, err := getTopKPrompt()
		if err != nil {
			return err
		}
		stopInput, err := getSingleInputPrompt("Stop words (comma separated, optional):", "")
		if err != nil {
			return err
		}
		stopWords, err := ParseStopWords(stopInput, DefaultLanguage)
		if err != nil {
			return err
		}

		again, err := startDiscovery(selected, corpus.Options{TopK: k, StopWords: stopWords})
		if err != nil || !again {
			return err
		}
	}
}

// Run the discovery for a directory and show the results menu. It reports
// whether the user wants to pick another directory.
func startDiscovery(dirPath string, opts corpus.Options) (bool, error) {
	start := time.Now()

	model, results, err := RunDiscovery(dirPath, DefaultLanguage, opts)
	if err != nil {
		logger.HandleError(err)
		return true, nil
	}

	PrintResults(os.Stdout, model, results)

	elapsed := time.Since(start)
	logger.HandleLog(fmt.Sprintf("\n------------------\n%sScored %d catalogs in %d ms%s\n------------------", util.TerminalCyan, model.DocCount, elapsed.Milliseconds(), util.TerminalReset))

	return resultsMenu(model, results)
}

func resultsMenu(model *corpus.Model, results []corpus.Result) (bool, error) {
	for {
		prompt := &survey.Select{
			Message: "Next:",
			Options: []string{optionInspect, optionNewDir, optionExit},
		}

		var selected string
		if err := askOne(prompt, &selected); err != nil {
			return false, err
		}

		switch selected {
		case optionInspect:
			if err := inspectCatalog(model, results); err != nil {
				return false, err
			}
		case optionNewDir:
			return true, nil
		default:
			return false, nil
		}
	}
}

// Show every scored term of one catalog
func inspectCatalog(model *corpus.Model, results []corpus.Result) error {
	prompt := &survey.Select{
		Message: "Select a catalog:",
		Options: model.Names,
	}

	var selected string
	if err := askOne(prompt, &selected); err != nil {
		return err
	}

	for _, r := range results {
		if r.Name == selected {
			PrintScores(os.Stdout, r)
			return nil
		}
	}
	return fmt.Errorf("catalog %q not found", selected)
}
