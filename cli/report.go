package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/deanrtaylor1/partsdiscovery/catalog"
	"github.com/deanrtaylor1/partsdiscovery/corpus"
	"github.com/deanrtaylor1/partsdiscovery/tfidf"
	"github.com/deanrtaylor1/partsdiscovery/util"
)

// DefaultLanguage is the snowball stemmer used for catalog words
const DefaultLanguage = "english"

// LoadModel reads every catalog in dirPath into a new model
func LoadModel(dirPath string, lang string) (*corpus.Model, error) {
	catalogs, err := catalog.LoadDirectory(dirPath, lang)
	if err != nil {
		return nil, err
	}

	model := corpus.NewEmptyModel()
	model.Name = dirPath
	for _, c := range catalogs {
		model.AddCatalog(c.Name, c.GetCatalogWords())
	}
	return model, nil
}

// RunDiscovery loads the catalogs of dirPath and discovers their keywords
func RunDiscovery(dirPath string, lang string, opts corpus.Options) (*corpus.Model, []corpus.Result, error) {
	model, err := LoadModel(dirPath, lang)
	if err != nil {
		return nil, nil, err
	}
	results, err := model.Discover(opts)
	if err != nil {
		return nil, nil, err
	}
	return model, results, nil
}

// ParseTopK parses the number of keywords to report, empty means the default
func ParseTopK(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return tfidf.DefaultTopK, nil
	}
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid keyword count %q: %w", s, err)
	}
	if k < 1 {
		return 0, fmt.Errorf("invalid keyword count %d: must be at least 1", k)
	}
	return k, nil
}

// ParseStopWords splits a comma or space separated list of stop words. The words
// go through the same lexer as catalog words so they match stemmed terms.
func ParseStopWords(s string, lang string) ([]string, error) {
	s = strings.ReplaceAll(s, ",", " ")
	words, err := catalog.FromText("stop words", s, lang)
	if err != nil {
		return nil, err
	}
	return words.GetCatalogWords(), nil
}

// PrintResults writes a summary of every catalog's keywords
func PrintResults(w io.Writer, model *corpus.Model, results []corpus.Result) {
	fmt.Fprintf(w, util.TerminalGreen+"%d catalogs | %d words | %d distinct terms\n"+util.TerminalReset, model.DocCount, model.TermCount, len(model.DF))
	for _, r := range results {
		fmt.Fprintln(w, "------------------------------------")
		fmt.Fprintf(w, util.TerminalCyan+"%s"+util.TerminalReset+" (%d words)\n", r.Name, r.TermCount)
		if r.HasMostFrequent {
			fmt.Fprintf(w, "  most frequent: %s\n", r.MostFrequent)
		} else {
			fmt.Fprintln(w, "  most frequent: -")
		}
		fmt.Fprintf(w, "  keywords: %s\n", strings.Join(r.Keywords, ", "))
	}
}

// PrintScores writes the positive TF-IDF scores of one catalog, best first
func PrintScores(w io.Writer, r corpus.Result) {
	fmt.Fprintf(w, util.TerminalCyan+"%s"+util.TerminalReset+"\n", r.Name)
	scores := corpus.FilterResults(r.Scores, corpus.IsGreaterThanZero)
	if len(scores) == 0 {
		fmt.Fprintln(w, "  no distinctive terms")
		return
	}
	for _, s := range scores {
		fmt.Fprintf(w, "  %-20s %.4f\n", s.Word, s.Score)
	}
}
