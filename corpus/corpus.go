package corpus

import (
	"fmt"

	"github.com/deanrtaylor1/partsdiscovery/tfidf"
)

type DocFreq = map[string]int

type DocData struct {
	TermCount int
	Terms     tfidf.TermFreq
}

// Options controls how a Model reports on its catalogs
type Options struct {
	// TopK is the number of keywords reported per catalog, tfidf.DefaultTopK when zero
	TopK int
	// StopWords are removed from every catalog before scoring
	StopWords []string
}

type Model struct {
	Name string
	// Names keeps catalogs in the order they were added
	Names []string
	TFPD  map[string]DocData
	//DF is the Document Frequency of a term
	DF        DocFreq
	TermCount int
	DocCount  int
}

type Result struct {
	Name            string             `json:"name"`
	TermCount       int                `json:"term_count"`
	MostFrequent    string             `json:"most_frequent"`
	HasMostFrequent bool               `json:"has_most_frequent"`
	Keywords        []string           `json:"keywords"`
	Scores          []tfidf.ScoredWord `json:"scores"`
}

// This function returns a new empty model
func NewEmptyModel() *Model {
	return &Model{
		TFPD: make(map[string]DocData),
		DF:   make(DocFreq),
	}
}

// This is used to reset the model before indexing a new set of catalogs
func (model *Model) ResetModel() {
	model.Names = nil
	model.TFPD = make(map[string]DocData)
	model.DF = make(DocFreq)
	model.TermCount = 0
	model.DocCount = 0
	model.Name = ""
}

// AddCatalog counts the words of a catalog and adds it to the model. Adding a
// name twice replaces the earlier catalog.
func (model *Model) AddCatalog(name string, tokens []string) {
	if _, ok := model.TFPD[name]; ok {
		model.RemoveCatalog(name)
	}

	tf := tfidf.CountWords(tokens)
	for token := range tf {
		model.DF[token] += 1
	}
	docData := ConvertToDocData(tf)
	model.TermCount += docData.TermCount
	model.DocCount += 1
	model.Names = append(model.Names, name)
	model.TFPD[name] = docData
}

// RemoveCatalog drops a catalog and its contribution to the document frequency
func (model *Model) RemoveCatalog(name string) bool {
	docData, ok := model.TFPD[name]
	if !ok {
		return false
	}

	for token := range docData.Terms {
		model.DF[token] -= 1
		if model.DF[token] <= 0 {
			delete(model.DF, token)
		}
	}
	model.TermCount -= docData.TermCount
	model.DocCount -= 1
	delete(model.TFPD, name)

	for i, n := range model.Names {
		if n == name {
			model.Names = append(model.Names[:i], model.Names[i+1:]...)
			break
		}
	}
	return true
}

// Corpus returns the term frequencies of every catalog in insertion order
func (model *Model) Corpus() []tfidf.TermFreq {
	corpus := make([]tfidf.TermFreq, 0, len(model.Names))
	for _, name := range model.Names {
		corpus = append(corpus, model.TFPD[name].Terms)
	}
	return corpus
}

// Discover scores every catalog against the whole model and returns its most
// frequent word and best scored keywords, in insertion order. Stop words are
// removed from a copy of each catalog's counts; the stored counts are untouched.
func (model *Model) Discover(opts Options) ([]Result, error) {
	k := opts.TopK
	if k == 0 {
		k = tfidf.DefaultTopK
	}

	idf, err := tfidf.CalculateIdfScores(model.Corpus())
	if err != nil {
		return nil, fmt.Errorf("error calculating idf scores for %q: %w", model.Name, err)
	}

	results := make([]Result, 0, len(model.Names))
	for _, name := range model.Names {
		docData := model.TFPD[name]
		counts := make(tfidf.TermFreq, len(docData.Terms))
		for word, count := range docData.Terms {
			counts[word] = count
		}
		for _, word := range opts.StopWords {
			tfidf.RemoveWord(word, counts)
		}

		scores, err := tfidf.CalculateTfIdfScores(counts, idf)
		if err != nil {
			return nil, fmt.Errorf("error scoring catalog %q: %w", name, err)
		}

		mostFrequent, ok := tfidf.MostFrequentWord(counts)
		results = append(results, Result{
			Name:            name,
			TermCount:       docData.TermCount,
			MostFrequent:    mostFrequent,
			HasMostFrequent: ok,
			Keywords:        tfidf.BestScoredWords(scores, k),
			Scores:          tfidf.RankScores(scores),
		})
	}
	return results, nil
}

// This function converts the TermFreq to a DocData struct which includes the termfreq and the
// total number of terms in the catalog
func ConvertToDocData(tf tfidf.TermFreq) DocData {
	var termCount int

	for _, freq := range tf {
		termCount += freq
	}

	return DocData{
		TermCount: termCount,
		Terms:     tf,
	}
}

// This function is a utility function to filter scored words based on a predicate
func FilterResults(results []tfidf.ScoredWord, filter func(float64) bool) []tfidf.ScoredWord {
	var filteredResults []tfidf.ScoredWord
	for _, result := range results {
		if filter(result.Score) {
			filteredResults = append(filteredResults, result)
		}
	}
	return filteredResults
}

// Utility predicate function to check if a score is greater than 0
func IsGreaterThanZero(value float64) bool {
	return value > 0
}
