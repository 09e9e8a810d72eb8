// internal/model/word.go
package model

import (
	"sort"
	"time"
)

// DefaultCategory はカテゴリ未設定の単語に付けるラベル
const DefaultCategory = "General"

// Word はベンガル語の見出し語と日本語訳を表します
type Word struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Bangla    string    `gorm:"not null;uniqueIndex" json:"bangla"` // 見出し語 (一意)
	Japanese  string    `gorm:"not null" json:"japanese"`           // 訳語。[文法注記] や ～ を含むことがある
	English   *string   `json:"english,omitempty"`
	Category  *string   `json:"category,omitempty"`
	Lesson    *int      `gorm:"index" json:"lesson,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// 検索用にケースフォールドした値。書き込み時に repository が埋める
	BanglaFold   string `gorm:"not null;default:''" json:"-"`
	JapaneseFold string `gorm:"not null;default:''" json:"-"`
	EnglishFold  string `gorm:"not null;default:''" json:"-"`
}

func (Word) TableName() string {
	return "words"
}

// Entry はデフォルト値を補った辞書エントリに変換します
func (w *Word) Entry() DictionaryEntry {
	entry := DictionaryEntry{
		Meaning:  w.Japanese,
		Category: DefaultCategory,
	}
	if w.English != nil {
		entry.English = *w.English
	}
	if w.Category != nil && *w.Category != "" {
		entry.Category = *w.Category
	}
	if w.Lesson != nil {
		entry.Lesson = *w.Lesson
	}
	return entry
}

// DictionaryEntry は見出し語に対応する値 (APIレスポンスの形)
type DictionaryEntry struct {
	Meaning  string `json:"meaning"`
	English  string `json:"en"`
	Category string `json:"category"`
	Lesson   int    `json:"lesson"`
}

// Dictionary は見出し語 -> エントリ の索引
type Dictionary map[string]DictionaryEntry

// NewDictionary は取得済みの単語リストから索引を組み立てます。
// 同じ見出し語が複数あれば後勝ち。
func NewDictionary(words []*Word) Dictionary {
	dict := make(Dictionary, len(words))
	for _, w := range words {
		if w == nil {
			continue
		}
		dict[w.Bangla] = w.Entry()
	}
	return dict
}

// Terms は見出し語を辞書順で返します (表示用)
func (d Dictionary) Terms() []string {
	terms := make([]string, 0, len(d))
	for term := range d {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Lookup は見出し語のエントリを返します
func (d Dictionary) Lookup(term string) (DictionaryEntry, bool) {
	entry, ok := d[term]
	return entry, ok
}

// Words は索引を保存用の Word に戻します (seed 用)
func (d Dictionary) Words() []*Word {
	words := make([]*Word, 0, len(d))
	for _, term := range d.Terms() {
		entry := d[term]
		w := &Word{Bangla: term, Japanese: entry.Meaning}
		if entry.English != "" {
			en := entry.English
			w.English = &en
		}
		if entry.Category != "" {
			category := entry.Category
			w.Category = &category
		}
		lesson := entry.Lesson
		w.Lesson = &lesson
		words = append(words, w)
	}
	return words
}

// WordQuery は GET /api/words のクエリパラメータ
type WordQuery struct {
	Lesson string `json:"lesson" validate:"omitempty,number"`
	Search string `json:"search" validate:"omitempty,max=500"`
}
