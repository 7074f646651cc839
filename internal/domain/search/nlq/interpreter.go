// Package nlq infers keywords and categories from conversational queries
// using a fixed dictionary. It is heuristic and fully deterministic.
package nlq

import (
	"regexp"
	"strings"

	"github.com/estimatecheck/marketplace/internal/domain/search/token"
)

// Interpretation is the output of the interpreter.
type Interpretation struct {
	// Keywords are the stop-word-filtered tokens plus number+unit phrases.
	Keywords []string `json:"keywords"`
	// Categories are the inferred category labels in dictionary order.
	Categories []string `json:"categories"`
}

// IsEmpty reports whether nothing was inferred.
func (i Interpretation) IsEmpty() bool {
	return len(i.Keywords) == 0 && len(i.Categories) == 0
}

// Interpreter extracts search intent from free text.
type Interpreter struct {
	categories []Category
	stop       map[string]struct{}
	unit       *regexp.Regexp
}

// NewInterpreter creates an interpreter over the given dictionary.
// Stop words go through the tokenizer, so an entry such as "please-find"
// stops each of its tokens.
func NewInterpreter(d Dictionary) *Interpreter {
	stop := make(map[string]struct{}, len(d.StopWords))
	for _, w := range d.StopWords {
		for _, t := range token.Split(w) {
			stop[t] = struct{}{}
		}
	}

	categories := make([]Category, len(d.Categories))
	for i, c := range d.Categories {
		words := make([]string, 0, len(c.Words))
		for _, w := range c.Words {
			if w = token.Normalize(w); w != "" {
				words = append(words, w)
			}
		}
		categories[i] = Category{Label: c.Label, Words: words}
	}

	return &Interpreter{
		categories: categories,
		stop:       stop,
		unit:       unitPattern(d.Units),
	}
}

// Interpret returns the keywords and inferred categories of text.
// Empty or unmatched text yields an empty Interpretation.
func (in *Interpreter) Interpret(text string) Interpretation {
	var keywords []string
	seen := make(map[string]struct{})
	add := func(k string) {
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		keywords = append(keywords, k)
	}

	for _, t := range token.Split(text) {
		if _, ok := in.stop[t]; !ok {
			add(t)
		}
	}

	// Unit phrases are matched on the raw text because the tokenizer has
	// already split "75 kw" into two tokens.
	if in.unit != nil {
		for _, m := range in.unit.FindAllString(token.Normalize(text), -1) {
			add(strings.Join(strings.Fields(m), ""))
		}
	}

	var categories []string
	for _, c := range in.categories {
		if anyContains(keywords, c.Words) {
			categories = append(categories, c.Label)
		}
	}

	return Interpretation{Keywords: keywords, Categories: categories}
}

func anyContains(keywords, words []string) bool {
	for _, k := range keywords {
		for _, w := range words {
			if strings.Contains(k, w) {
				return true
			}
		}
	}
	return false
}

func unitPattern(units []string) *regexp.Regexp {
	if len(units) == 0 {
		return nil
	}
	alts := make([]string, len(units))
	for i, u := range units {
		alts[i] = regexp.QuoteMeta(token.Normalize(u))
	}
	return regexp.MustCompile(`\d+\s?(?:` + strings.Join(alts, "|") + `)`)
}
