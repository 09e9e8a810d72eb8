package study

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestDrill_Labels(t *testing.T) {
	d := NewDrill([]string{"a", "b"}, seeded())

	assert.Equal(t, StateIdle, d.State())
	assert.Equal(t, LabelStartPractice, d.NextLabel())

	_, ok := d.Next()
	require.True(t, ok)
	assert.Equal(t, StateShowingWord, d.State())
	assert.Equal(t, LabelNextWord, d.NextLabel())
	assert.Equal(t, LabelShowMeaning, d.RevealLabel())

	_, ok = d.Next()
	require.True(t, ok)
	// キューを使い切った直後
	assert.Equal(t, LabelStartOver, d.NextLabel())

	d.Reveal()
	assert.Equal(t, LabelShowWord, d.RevealLabel())
}

func TestDrill_Reveal(t *testing.T) {
	t.Run("正常系: idle では何もしない", func(t *testing.T) {
		d := NewDrill([]string{"a"}, seeded())
		assert.Equal(t, StateIdle, d.Reveal())
		assert.Equal(t, "", d.Current())
	})

	t.Run("正常系: 単語と意味を交互に切り替える", func(t *testing.T) {
		d := NewDrill([]string{"a", "b", "c"}, seeded())
		word, ok := d.Next()
		require.True(t, ok)

		assert.Equal(t, StateShowingMeaning, d.Reveal())
		assert.Equal(t, StateShowingWord, d.Reveal())
		assert.Equal(t, StateShowingMeaning, d.Reveal())
		assert.Equal(t, word, d.Current())
	})

	t.Run("正常系: 意味を表示中でも次の単語に進める", func(t *testing.T) {
		d := NewDrill([]string{"a", "b"}, seeded())
		_, _ = d.Next()
		d.Reveal()
		_, ok := d.Next()
		require.True(t, ok)
		assert.Equal(t, StateShowingWord, d.State())
	})
}

func TestDrill_Next(t *testing.T) {
	t.Run("正常系: 1周で全単語がちょうど1回ずつ出る", func(t *testing.T) {
		words := []string{"আমি", "তুমি", "সে", "আমরা", "তারা"}
		d := NewDrill(words, seeded())

		for round := 1; round <= 3; round++ {
			var seen []string
			for range words {
				w, ok := d.Next()
				require.True(t, ok)
				seen = append(seen, w)
			}
			assert.Equal(t, 0, d.Remaining())
			assert.Equal(t, round, d.Rounds())

			sort.Strings(seen)
			want := append([]string(nil), words...)
			sort.Strings(want)
			assert.Equal(t, want, seen)
		}
	})

	t.Run("正常系: 同じシードなら同じ順番", func(t *testing.T) {
		words := []string{"a", "b", "c", "d", "e", "f"}
		d1 := NewDrill(words, seeded())
		d2 := NewDrill(words, seeded())
		for range words {
			w1, _ := d1.Next()
			w2, _ := d2.Next()
			assert.Equal(t, w1, w2)
		}
	})

	t.Run("異常系: 単語が0件なら idle のまま", func(t *testing.T) {
		d := NewDrill(nil, seeded())
		w, ok := d.Next()
		assert.False(t, ok)
		assert.Equal(t, "", w)
		assert.Equal(t, StateIdle, d.State())
		assert.Equal(t, 0, d.Rounds())
	})

	t.Run("正常系: 呼び出し元のスライスを変更しない", func(t *testing.T) {
		words := []string{"a", "b", "c"}
		d := NewDrill(words, seeded())
		for i := 0; i < 6; i++ {
			d.Next()
		}
		assert.Equal(t, []string{"a", "b", "c"}, words)
	})
}

func TestDrillState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "showing-word", StateShowingWord.String())
	assert.Equal(t, "showing-meaning", StateShowingMeaning.String())
	assert.Equal(t, "unknown", DrillState(9).String())
}
