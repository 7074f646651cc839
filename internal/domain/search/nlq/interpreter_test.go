package nlq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret(t *testing.T) {
	in := NewInterpreter(DefaultDictionary())

	tests := []struct {
		name       string
		text       string
		keywords   []string
		categories []string
	}{
		{
			name:       "conversational query",
			text:       "75kw 모터 인버터 업체 찾아줘",
			keywords:   []string{"75kw", "모터", "인버터"},
			categories: []string{"기계", "전기"},
		},
		{
			name:       "spaced unit is joined",
			text:       "380 V 케이블 필요",
			keywords:   []string{"380", "v", "케이블", "380v"},
			categories: []string{"전기"},
		},
		{
			name:       "ton unit",
			text:       "2 ton 윈치",
			keywords:   []string{"2", "ton", "윈치", "2ton"},
			categories: []string{"기계"},
		},
		{
			name:       "category word as substring",
			text:       "유압실린더 plc제어반",
			keywords:   []string{"유압실린더", "plc제어반"},
			categories: []string{"기계", "계장"},
		},
		{
			name:       "categories in dictionary order",
			text:       "안전 센서 드릴",
			keywords:   []string{"안전", "센서", "드릴"},
			categories: []string{"공구", "계장", "기타"},
		},
		{
			name: "only stop words",
			text: "업체 추천 좀 해줘",
		},
		{
			name: "empty",
			text: "",
		},
		{
			name:     "no category match",
			text:     "abc 123",
			keywords: []string{"abc", "123"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := in.Interpret(tc.text)
			assert.Equal(t, tc.keywords, got.Keywords)
			assert.Equal(t, tc.categories, got.Categories)
		})
	}
}

func TestInterpret_Deterministic(t *testing.T) {
	in := NewInterpreter(DefaultDictionary())
	const text = "75kw 모터 인버터 케이블 센서 업체 찾아줘 10mm 5kg"

	first := in.Interpret(text)
	for n := 0; n < 20; n++ {
		assert.Equal(t, first, in.Interpret(text))
	}
}

func TestInterpret_EmptyIsEmpty(t *testing.T) {
	in := NewInterpreter(DefaultDictionary())
	assert.True(t, in.Interpret("").IsEmpty())
	assert.True(t, in.Interpret("찾아줘").IsEmpty())
	assert.False(t, in.Interpret("모터").IsEmpty())
}

func TestInterpret_CustomDictionary(t *testing.T) {
	in := NewInterpreter(Dictionary{
		Categories: []Category{{Label: "Pumps", Words: []string{"PUMP"}}},
		StopWords:  []string{"Please"},
		Units:      []string{"bar"},
	})

	got := in.Interpret("please 10 bar pumps")
	assert.Equal(t, []string{"10", "bar", "pumps", "10bar"}, got.Keywords)
	assert.Equal(t, []string{"Pumps"}, got.Categories)
}

func TestInterpret_NoUnits(t *testing.T) {
	in := NewInterpreter(Dictionary{})
	got := in.Interpret("75 kw")
	assert.Equal(t, []string{"75", "kw"}, got.Keywords)
	assert.Empty(t, got.Categories)
}

func TestInterpret_PunctuatedStopWord(t *testing.T) {
	d := DefaultDictionary()
	d.StopWords = append(d.StopWords, "please-find", "Vendor")

	got := NewInterpreter(d).Interpret("please-find motor vendor")
	assert.Equal(t, []string{"motor"}, got.Keywords)

	got = NewInterpreter(d).Interpret("please find a VENDOR")
	assert.Equal(t, []string{"a"}, got.Keywords)
}

func TestDictionary_ValidateStopWords(t *testing.T) {
	d := DefaultDictionary()
	d.StopWords = append(d.StopWords, "--")
	require.ErrorContains(t, d.Validate(), "stop_words")

	d.StopWords = []string{"please-find"}
	require.NoError(t, d.Validate())
}

func TestLoadDictionary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.yaml")
	data := `
categories:
  - label: 펌프
    words: [펌프, 임펠러]
stop_words: [문의]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	d, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, []Category{{Label: "펌프", Words: []string{"펌프", "임펠러"}}}, d.Categories)
	assert.Equal(t, []string{"문의"}, d.StopWords)
	assert.Equal(t, DefaultDictionary().Units, d.Units)

	got := NewInterpreter(d).Interpret("원심펌프 문의")
	assert.Equal(t, []string{"원심펌프"}, got.Keywords)
	assert.Equal(t, []string{"펌프"}, got.Categories)
}

func TestLoadDictionary_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDictionary(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("categories: [::"), 0o600))
	_, err = LoadDictionary(bad)
	require.Error(t, err)

	noLabel := filepath.Join(dir, "nolabel.yaml")
	require.NoError(t, os.WriteFile(noLabel, []byte("categories:\n  - words: [a]\n"), 0o600))
	_, err = LoadDictionary(noLabel)
	require.ErrorContains(t, err, "label is required")

	punctOnly := filepath.Join(dir, "punct.yaml")
	require.NoError(t, os.WriteFile(punctOnly, []byte("stop_words: [\"?!\"]\n"), 0o600))
	_, err = LoadDictionary(punctOnly)
	require.ErrorContains(t, err, "no searchable token")
}
