// Package study は学習画面のセッション (フラッシュカード・例文・記憶用画像) を扱います。
package study

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"n5_vocab_study/internal/model"
)

// RoutePrefix は学習画面のURLの接頭辞
const RoutePrefix = "/study"

const (
	MsgNoStudyList       = "No study list found or dictionary data is missing. Please go back and select words to study."
	MsgUnknownWord       = "Could not find the Japanese translation for this word."
	MsgNothingToPractice = "There are no words to practice."
)

var (
	ErrNoStudyList = errors.New("study: no study list or dictionary data")
	ErrUnknownWord = errors.New("study: word not in dictionary")
)

// Source はセッションを組み立てる材料
type Source struct {
	Words      []string
	Dictionary model.Dictionary
	Sentences  []model.ExampleSentence
}

// ListItem は単語リストの1行
type ListItem struct {
	Word  string
	Entry model.DictionaryEntry
}

// Card はフラッシュカードの表示内容
type Card struct {
	State       DrillState
	Word        string
	Meaning     string
	Empty       bool
	NextLabel   string
	RevealLabel string
	Rounds      int
}

// Session は1画面分の学習状態。ページを閉じるか放置で期限切れになるまで生きる。
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu        sync.Mutex
	words     []string
	dict      model.Dictionary
	sentences []model.ExampleSentence
	drill     *Drill
}

// NewSession は選択された単語と辞書からセッションを作ります。
// 単語リストか辞書が空なら ErrNoStudyList。
func NewSession(src Source, rng *rand.Rand) (*Session, error) {
	if len(src.Words) == 0 || len(src.Dictionary) == 0 {
		return nil, ErrNoStudyList
	}

	// 辞書にない単語は黙って除外する
	drillWords := make([]string, 0, len(src.Words))
	for _, w := range src.Words {
		if _, ok := src.Dictionary.Lookup(w); ok {
			drillWords = append(drillWords, w)
		}
	}

	return &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		words:     append([]string(nil), src.Words...),
		dict:      src.Dictionary,
		sentences: src.Sentences,
		drill:     NewDrill(drillWords, rng),
	}, nil
}

// Path はこのセッションのURLパス
func (s *Session) Path() string {
	return RoutePrefix + "/" + s.ID.String()
}

// WordCount は選択された単語数 (辞書にない単語も含む)
func (s *Session) WordCount() int {
	return len(s.words)
}

// Items は辞書にある単語だけを選択順に返します
func (s *Session) Items() []ListItem {
	items := make([]ListItem, 0, len(s.words))
	for _, w := range s.words {
		entry, ok := s.dict.Lookup(w)
		if !ok {
			continue
		}
		items = append(items, ListItem{Word: w, Entry: entry})
	}
	return items
}

// Lookup はセッションの辞書から単語を引きます
func (s *Session) Lookup(word string) (model.DictionaryEntry, bool) {
	return s.dict.Lookup(word)
}

// Card は現在のカードを返します
func (s *Session) Card() Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cardLocked(false)
}

// Next は次の単語を出します
func (s *Session) Next() Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.drill.Next()
	return s.cardLocked(!ok)
}

// Reveal は単語と意味を切り替えます
func (s *Session) Reveal() Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drill.Reveal()
	return s.cardLocked(false)
}

func (s *Session) cardLocked(empty bool) Card {
	card := Card{
		State:       s.drill.State(),
		Word:        s.drill.Current(),
		Empty:       empty,
		NextLabel:   s.drill.NextLabel(),
		RevealLabel: s.drill.RevealLabel(),
		Rounds:      s.drill.Rounds(),
	}
	if card.State != StateIdle {
		entry, _ := s.dict.Lookup(card.Word)
		card.Meaning = entry.Meaning
	}
	return card
}

// Examples は単語の訳語を含む例文を探します。辞書にない単語は ErrUnknownWord。
func (s *Session) Examples(word string) (ExampleResult, error) {
	entry, ok := s.dict.Lookup(word)
	if !ok {
		return ExampleResult{Word: word}, ErrUnknownWord
	}
	result := FindExamples(entry.Meaning, s.sentences)
	result.Word = word
	return result, nil
}

// Mnemonic は単語の記憶用画像を検索します
func (s *Session) Mnemonic(ctx context.Context, logger *slog.Logger, searcher ImageSearcher, word string) MnemonicResult {
	entry, ok := s.dict.Lookup(word)
	return LookupMnemonic(ctx, logger, searcher, word, entry, ok)
}
