package tfidf

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// DefaultTopK is the number of keywords reported for a catalog when the caller
// does not ask for a different amount.
const DefaultTopK = 10

// TermFreq associates each word of a catalog with the number of times it appears.
type TermFreq map[string]int

// IdfScores associates each word of a corpus with its inverse document frequency.
type IdfScores map[string]float64

// TfIdfScores associates each word of a single catalog with its TF-IDF score.
type TfIdfScores map[string]float64

// ScoredWord is a word paired with its TF-IDF score.
type ScoredWord struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

var (
	// ErrEmptyCorpus is returned when IDF scores are requested for zero catalogs.
	ErrEmptyCorpus = errors.New("tfidf: corpus contains no catalogs")
	// ErrMissingIdf is matched by every *MissingIdfError.
	ErrMissingIdf = errors.New("tfidf: missing idf score")
)

// MissingIdfError reports a catalog word that has no entry in the IDF scores.
type MissingIdfError struct {
	Word string
}

func (e *MissingIdfError) Error() string {
	return fmt.Sprintf("tfidf: missing idf score for word %q", e.Word)
}

func (e *MissingIdfError) Is(target error) bool {
	return target == ErrMissingIdf
}

// CountWords calculates how often each word appears in a catalog's words.
func CountWords(tokens []string) TermFreq {
	tf := make(TermFreq)
	for _, token := range tokens {
		tf[token] += 1
	}
	return tf
}

// RemoveWord deletes word from counts. The caller owns counts and it is modified
// in place; removing a word that is not there does nothing.
func RemoveWord(word string, counts TermFreq) {
	delete(counts, word)
}

// MostFrequentWord returns the word with the highest count. When several words
// share that count the lexicographically smallest one wins. The boolean is false
// when counts is nil or empty.
func MostFrequentWord(counts TermFreq) (string, bool) {
	if len(counts) == 0 {
		return "", false
	}

	var best string
	maxCount := -1
	for word, count := range counts {
		if count > maxCount || (count == maxCount && word < best) {
			best = word
			maxCount = count
		}
	}
	return best, true
}

// CalculateIdfScores computes the IDF score for every word of a set of catalogs.
// The document frequency of a word is the number of catalogs containing it, so
// idf = log10(N / df) where N is the number of catalogs.
func CalculateIdfScores(corpus []TermFreq) (IdfScores, error) {
	N := len(corpus)
	if N == 0 {
		return nil, ErrEmptyCorpus
	}

	df := make(map[string]int)
	for _, counts := range corpus {
		for word := range counts {
			df[word] += 1
		}
	}

	idf := make(IdfScores, len(df))
	for word, M := range df {
		idf[word] = ComputeIDF(N, M)
	}
	return idf, nil
}

// ComputeIDF returns log10(N/M) for a word found in M of N catalogs.
func ComputeIDF(N int, M int) float64 {
	return math.Log10(float64(N) / float64(M))
}

// CalculateTfIdfScores multiplies the count of every word in a catalog by its IDF
// score. Every word in counts must have an IDF score, otherwise a
// *MissingIdfError naming the first such word (in sorted order) is returned.
func CalculateTfIdfScores(counts TermFreq, idf IdfScores) (TfIdfScores, error) {
	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	sort.Strings(words)

	scores := make(TfIdfScores, len(counts))
	for _, word := range words {
		score, ok := idf[word]
		if !ok {
			return nil, &MissingIdfError{Word: word}
		}
		scores[word] = float64(counts[word]) * score
	}
	return scores, nil
}

// RankScores orders the scores from highest to lowest. Equal scores are ordered
// by word so the ranking is stable across runs; NaN scores come last.
func RankScores(scores TfIdfScores) []ScoredWord {
	ranked := make([]ScoredWord, 0, len(scores))
	for word, score := range scores {
		ranked = append(ranked, ScoredWord{Word: word, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		// NaN scores sort last
		iNaN, jNaN := math.IsNaN(ranked[i].Score), math.IsNaN(ranked[j].Score)
		if iNaN != jNaN {
			return jNaN
		}
		if !iNaN && ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Word < ranked[j].Word
	})
	return ranked
}

// BestScoredWords gets the k highest scored words of a catalog, best first.
// If there are fewer than k scores every word is returned; k <= 0 returns none.
func BestScoredWords(scores TfIdfScores, k int) []string {
	ranked := RankScores(scores)
	if k < 0 {
		k = 0
	}
	if k > len(ranked) {
		k = len(ranked)
	}

	words := make([]string, 0, k)
	for _, entry := range ranked[:k] {
		words = append(words, entry.Word)
	}
	return words
}
