package nlq

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/estimatecheck/marketplace/internal/domain/search/token"
)

// Category maps a category label to the words that suggest it.
type Category struct {
	Label string   `yaml:"label"`
	Words []string `yaml:"words"`
}

// Dictionary is the static configuration of the interpreter.
type Dictionary struct {
	Categories []Category `yaml:"categories"`
	StopWords  []string   `yaml:"stop_words"`
	// Units are the suffixes recognized after a number, e.g. "kw" in "75 kW".
	// Order matters: earlier alternatives win at the same position.
	Units []string `yaml:"units"`
}

// DefaultDictionary returns the built-in industrial-materials dictionary.
func DefaultDictionary() Dictionary {
	return Dictionary{
		Categories: []Category{
			{Label: "기계", Words: []string{"모터", "감속기", "컨베이어", "유압", "윈치", "기계"}},
			{Label: "전기", Words: []string{"인버터", "차단기", "분전", "배선", "케이블", "전기", "mcc"}},
			{Label: "건축", Words: []string{"시멘트", "철골", "패널", "건축", "단열", "방수"}},
			{Label: "공구", Words: []string{"드릴", "렌치", "절단기", "그라인더", "공구", "임팩"}},
			{Label: "계장", Words: []string{"센서", "트랜스미터", "plc", "유량계", "계장", "계측"}},
			{Label: "기타", Words: []string{"소모품", "안전", "작업등", "기타"}},
		},
		StopWords: []string{"업체", "찾아줘", "추천", "보여줘", "원해", "필요", "좀", "해줘"},
		Units:     []string{"kw", "kva", "v", "a", "mm", "kg", "ton"},
	}
}

// LoadDictionary reads a YAML dictionary file.
// Sections missing from the file keep their built-in defaults.
func LoadDictionary(path string) (Dictionary, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Dictionary{}, fmt.Errorf("read dictionary %s: %w", path, err)
	}

	var d Dictionary
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Dictionary{}, fmt.Errorf("parse dictionary %s: %w", path, err)
	}

	def := DefaultDictionary()
	if d.Categories == nil {
		d.Categories = def.Categories
	}
	if d.StopWords == nil {
		d.StopWords = def.StopWords
	}
	if d.Units == nil {
		d.Units = def.Units
	}

	if err := d.Validate(); err != nil {
		return Dictionary{}, fmt.Errorf("invalid dictionary %s: %w", path, err)
	}
	return d, nil
}

// Validate checks that every category has a label and at least one word,
// and that every stop word contains at least one token.
func (d Dictionary) Validate() error {
	for i, c := range d.Categories {
		if c.Label == "" {
			return fmt.Errorf("categories[%d]: label is required", i)
		}
		if len(c.Words) == 0 {
			return fmt.Errorf("category %q: at least one word is required", c.Label)
		}
	}
	for i, w := range d.StopWords {
		if len(token.Split(w)) == 0 {
			return fmt.Errorf("stop_words[%d]: %q has no searchable token", i, w)
		}
	}
	for i, u := range d.Units {
		if u == "" {
			return fmt.Errorf("units[%d]: empty unit", i)
		}
	}
	return nil
}
