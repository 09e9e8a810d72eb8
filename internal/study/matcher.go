package study

import (
	"regexp"
	"strings"

	"n5_vocab_study/internal/model"
)

// 変数スロットを表す記号
const placeholderGlyph = "～"

var annotationPattern = regexp.MustCompile(`\[.*?\]`)

// SearchTerm は訳語から [文法注記]・～・、 を取り除いた検索語を返します
func SearchTerm(gloss string) string {
	s := annotationPattern.ReplaceAllString(gloss, "")
	s = strings.ReplaceAll(s, placeholderGlyph, "")
	s = strings.ReplaceAll(s, "、", "")
	return strings.TrimSpace(s)
}

// DisplayTerm は見出し表示用に注記を取り除き、～ を ... に置き換えます
func DisplayTerm(gloss string) string {
	s := strings.TrimSpace(annotationPattern.ReplaceAllString(gloss, ""))
	return strings.ReplaceAll(s, placeholderGlyph, "...")
}

// Segment は例文の一部。Highlight が true の部分が一致箇所。
type Segment struct {
	Text      string
	Highlight bool
}

// ExampleMatch は一致した例文1件
type ExampleMatch struct {
	Number   int
	Sentence model.ExampleSentence
	Segments []Segment
}

// ExampleResult は例文検索の結果
type ExampleResult struct {
	Word        string
	DisplayTerm string
	SearchTerm  string
	Matches     []ExampleMatch
}

// FindExamples は訳語を含む例文をすべて探し、一致箇所をすべて区切って返します。
// 大文字小文字を区別する単純な部分一致。
func FindExamples(gloss string, sentences []model.ExampleSentence) ExampleResult {
	result := ExampleResult{
		DisplayTerm: DisplayTerm(gloss),
		SearchTerm:  SearchTerm(gloss),
	}
	if result.SearchTerm == "" {
		return result
	}

	pattern := regexp.MustCompile(regexp.QuoteMeta(result.SearchTerm))
	for _, s := range sentences {
		if !pattern.MatchString(s.Japanese) {
			continue
		}
		result.Matches = append(result.Matches, ExampleMatch{
			Number:   len(result.Matches) + 1,
			Sentence: s,
			Segments: highlight(s.Japanese, pattern),
		})
	}
	return result
}

func highlight(text string, pattern *regexp.Regexp) []Segment {
	var segments []Segment
	last := 0
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Highlight: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}
