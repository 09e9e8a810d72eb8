package study

import (
	"math/rand/v2"
)

// DrillState はフラッシュカード練習の状態
type DrillState int

const (
	StateIdle DrillState = iota
	StateShowingWord
	StateShowingMeaning
)

func (s DrillState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateShowingWord:
		return "showing-word"
	case StateShowingMeaning:
		return "showing-meaning"
	default:
		return "unknown"
	}
}

// ボタンの表示ラベル
const (
	LabelStartPractice = "Start Practice"
	LabelNextWord      = "Next Word"
	LabelStartOver     = "Start Over"
	LabelShowMeaning   = "Show Meaning"
	LabelShowWord      = "Show Word"
)

// Drill はシャッフルしたキューから単語を1つずつ出すステートマシン。
// キューが空になったら全単語を改めてシャッフルして補充する。
type Drill struct {
	words   []string
	queue   []string
	current string
	state   DrillState
	rounds  int
	rng     *rand.Rand
}

// NewDrill は words を出題対象にした練習を作ります。rng が nil ならランダムにシードする。
func NewDrill(words []string, rng *rand.Rand) *Drill {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Drill{
		words: append([]string(nil), words...),
		rng:   rng,
	}
}

// Next はキューから1語取り出して showing-word に遷移します。
// 出題対象が1語もなければ状態を変えずに false を返す。
func (d *Drill) Next() (string, bool) {
	if len(d.queue) == 0 {
		d.refill()
		if len(d.queue) == 0 {
			return "", false
		}
	}
	last := len(d.queue) - 1
	d.current = d.queue[last]
	d.queue = d.queue[:last]
	d.state = StateShowingWord
	return d.current, true
}

// Reveal は単語と意味の表示を切り替えます。idle では何もしない。
func (d *Drill) Reveal() DrillState {
	switch d.state {
	case StateShowingWord:
		d.state = StateShowingMeaning
	case StateShowingMeaning:
		d.state = StateShowingWord
	}
	return d.state
}

func (d *Drill) refill() {
	if len(d.words) == 0 {
		return
	}
	d.queue = append(d.queue[:0], d.words...)
	d.rng.Shuffle(len(d.queue), func(i, j int) {
		d.queue[i], d.queue[j] = d.queue[j], d.queue[i]
	})
	d.rounds++
}

func (d *Drill) State() DrillState { return d.state }
func (d *Drill) Current() string   { return d.current }
func (d *Drill) Remaining() int    { return len(d.queue) }
func (d *Drill) Rounds() int       { return d.rounds }
func (d *Drill) Size() int         { return len(d.words) }

// NextLabel は「次へ」ボタンのラベル
func (d *Drill) NextLabel() string {
	switch {
	case d.state == StateIdle:
		return LabelStartPractice
	case len(d.queue) == 0:
		return LabelStartOver
	default:
		return LabelNextWord
	}
}

// RevealLabel は表示切り替えボタンのラベル
func (d *Drill) RevealLabel() string {
	if d.state == StateShowingMeaning {
		return LabelShowWord
	}
	return LabelShowMeaning
}
