package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"

	"github.com/tebeka/snowball"
)

// ErrNoMoreTokens is returned by Next once the content is exhausted.
var ErrNoMoreTokens = errors.New("no more tokens")

// Lexer splits catalog text into case folded words and numbers. Punctuation
// and whitespace are dropped. When a stemmer is attached every word is stemmed.
type Lexer struct {
	content []rune
	folder  cases.Caser
	stemmer *snowball.Stemmer
}

// NewLexer creates a new Lexer that folds case but does not stem
func NewLexer(content string) *Lexer {
	return &Lexer{content: []rune(content), folder: cases.Fold()}
}

// NewStemmingLexer creates a Lexer that also stems words with the snowball
// stemmer for lang (for example "english"). Close must be called when done.
func NewStemmingLexer(content string, lang string) (*Lexer, error) {
	stemmer, err := snowball.New(lang)
	if err != nil {
		return nil, fmt.Errorf("error creating %s stemmer: %w", lang, err)
	}
	l := NewLexer(content)
	l.stemmer = stemmer
	return l, nil
}

// Close releases the stemmer, if any
func (l *Lexer) Close() {
	if l.stemmer != nil {
		l.stemmer.Close()
		l.stemmer = nil
	}
}

// TrimLeft trims everything that cannot start a token from the left of the content
func (l *Lexer) TrimLeft() {
	for len(l.content) > 0 && !isTokenRune(l.content[0]) {
		l.content = l.content[1:]
	}
}

// Chop chops the content by n and returns the chopped content
func (l *Lexer) Chop(n int) (token []rune) {
	token = l.content[:n]
	l.content = l.content[n:]
	return token
}

// ChopWhile chops the content while the predicate f returns true
func (l *Lexer) ChopWhile(f func(rune) bool) (token []rune) {
	n := 0
	for n < len(l.content) && f(l.content[n]) {
		n += 1
	}
	return l.Chop(n)
}

// NextToken returns the next token, or nil at the end of the content
func (l *Lexer) NextToken() []rune {
	l.TrimLeft()

	if len(l.content) == 0 {
		return nil
	}
	if unicode.IsNumber(l.content[0]) {
		return l.ChopWhile(unicode.IsNumber)
	}

	term := l.folder.String(string(l.ChopWhile(isTokenRune)))
	if l.stemmer != nil {
		term = l.stemmer.Stem(term)
	}
	return []rune(term)
}

// Next returns the next token as a string
func (l *Lexer) Next() (string, error) {
	token := l.NextToken()
	if token == nil {
		return "EOF", ErrNoMoreTokens
	}
	return string(token), nil
}

// Tokens drains the lexer and returns every remaining token in order
func (l *Lexer) Tokens() []string {
	tokens := []string{}
	for {
		token, err := l.Next()
		if err != nil {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Tokenize is a convenience wrapper returning all tokens of content, stemmed
// with the snowball stemmer for lang unless lang is empty.
func Tokenize(content string, lang string) ([]string, error) {
	if lang == "" {
		return NewLexer(content).Tokens(), nil
	}

	l, err := NewStemmingLexer(content, lang)
	if err != nil {
		return nil, err
	}
	defer l.Close()
	return l.Tokens(), nil
}

// ParseHtmlTextContent parses a html string and returns its text content.
// Text of script and style elements is skipped.
func ParseHtmlTextContent(htmlContent string) string {
	var content strings.Builder
	skip := 0

	d := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := d.Next()
		switch tt {
		case html.ErrorToken:
			return content.String()
		case html.StartTagToken:
			if name, _ := d.TagName(); isHiddenElement(string(name)) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := d.TagName(); isHiddenElement(string(name)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				content.Write(d.Text())
				content.WriteByte(' ')
			}
		}
	}
}

func isHiddenElement(name string) bool {
	return name == "script" || name == "style"
}
