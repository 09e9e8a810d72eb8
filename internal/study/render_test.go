package study

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"n5_vocab_study/internal/imagesearch"
	"n5_vocab_study/internal/model"
	"n5_vocab_study/internal/view"
)

func render(t *testing.T, n *view.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, view.Render(&buf, n))
	return buf.String()
}

func TestPageView(t *testing.T) {
	s := newTestSession(t, "পানি", "থেকে", "অজানা")
	page := PageView(s)

	t.Run("正常系: 単語リスト", func(t *testing.T) {
		assert.Equal(t, "Your Study List (3 words)", page.Find(func(n *view.Node) bool { return n.Tag == "h2" }).TextContent())

		items := page.FindAll(view.ByClass("study-item"))
		require.Len(t, items, 2)
		assert.Equal(t, "পানি", items[0].Find(view.ByClass("study-word")).TextContent())
		assert.Equal(t, model.DefaultCategory, items[1].Find(view.ByClass("study-category")).TextContent())

		// 英訳がある単語だけ記憶用画像ボタンを出す
		assert.NotNil(t, items[0].Find(view.ByClass("mnemonic-btn")))
		assert.Nil(t, items[1].Find(view.ByClass("mnemonic-btn")))
	})

	t.Run("正常系: モーダルの器がある", func(t *testing.T) {
		for _, id := range []string{IDSentenceModal, IDSentenceModalBody, IDMnemonicModal, IDMnemonicModalBody, IDFlashcard} {
			assert.NotNil(t, page.Find(view.ByID(id)), id)
		}
	})

	t.Run("正常系: 例文ボタンはURLエンコードした単語を渡す", func(t *testing.T) {
		btn := page.Find(view.ByClass("examples-btn"))
		require.NotNil(t, btn)
		require.Len(t, btn.Bindings, 1)
		want := view.Binding{
			Event:  "click",
			Action: ActionFetch,
			Args: map[string]string{
				"method": "GET",
				"target": IDSentenceModalBody,
				"open":   IDSentenceModal,
				"url":    s.Path() + "/examples?word=%E0%A6%AA%E0%A6%BE%E0%A6%A8%E0%A6%BF",
			},
		}
		if diff := cmp.Diff(want, btn.Bindings[0]); diff != "" {
			t.Errorf("binding mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("正常系: スクリプトは外部のバインダだけ", func(t *testing.T) {
		out := render(t, page)
		assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
		assert.Equal(t, 1, strings.Count(out, "<script"))
		assert.Contains(t, out, `<script src="/study/static/study.js" defer=""></script>`)
		assert.NotContains(t, out, "onclick")
		assert.Contains(t, out, `data-on-pagehide="end-session"`)
	})

	t.Run("正常系: 描画したバインディングはすべてバインダが扱える", func(t *testing.T) {
		script := string(BinderScript())
		bound := page.FindAll(func(n *view.Node) bool { return len(n.Bindings) > 0 })
		require.NotEmpty(t, bound)
		for _, n := range bound {
			for _, b := range n.Bindings {
				assert.Contains(t, script, `"`+b.Event+`"`, "event %s", b.Event)
				assert.Contains(t, script, `"`+b.Action+`"`, "action %s", b.Action)
			}
		}
	})
}

func TestFlashcardView(t *testing.T) {
	tests := []struct {
		name       string
		card       Card
		wantText   string
		wantReveal bool
		wantClass  string
	}{
		{
			name:      "idle",
			card:      Card{State: StateIdle, NextLabel: LabelStartPractice, RevealLabel: LabelShowMeaning},
			wantText:  `Click "Start Practice" to begin.`,
			wantClass: "flashcard",
		},
		{
			name:       "単語表示",
			card:       Card{State: StateShowingWord, Word: "পানি", Meaning: "水", NextLabel: LabelNextWord, RevealLabel: LabelShowMeaning},
			wantText:   "পানি",
			wantReveal: true,
			wantClass:  "flashcard",
		},
		{
			name:       "意味表示",
			card:       Card{State: StateShowingMeaning, Word: "পানি", Meaning: "水", NextLabel: LabelStartOver, RevealLabel: LabelShowWord},
			wantText:   "水",
			wantReveal: true,
			wantClass:  "flashcard is-flipped",
		},
		{
			name:      "出題なし",
			card:      Card{State: StateIdle, Empty: true, NextLabel: LabelStartPractice},
			wantText:  MsgNothingToPractice,
			wantClass: "flashcard",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := FlashcardView(tt.card, "/study/x")

			class, _ := n.GetAttr("class")
			assert.Equal(t, tt.wantClass, class)
			state, _ := n.GetAttr("data-state")
			assert.Equal(t, tt.card.State.String(), state)
			flip, _ := n.GetAttr("data-flip-ms")
			assert.Equal(t, "300", flip)

			assert.Contains(t, n.Find(view.ByID("flashcard-content")).TextContent(), tt.wantText)
			assert.Equal(t, tt.card.NextLabel, n.Find(view.ByID(IDNextButton)).TextContent())

			reveal := n.Find(view.ByID(IDRevealButton))
			if !tt.wantReveal {
				assert.Nil(t, reveal)
				return
			}
			require.NotNil(t, reveal)
			assert.Equal(t, tt.card.RevealLabel, reveal.TextContent())
			assert.Equal(t, "/study/x/drill/reveal", reveal.Bindings[0].Args["url"])
		})
	}

	t.Run("意味表示では読み上げボタンを出す", func(t *testing.T) {
		n := FlashcardView(Card{State: StateShowingMeaning, Meaning: "水"}, "/study/x")
		btn := n.Find(view.ByClass("speak-btn"))
		require.NotNil(t, btn)
		assert.Equal(t, ActionSpeak, btn.Bindings[0].Action)
		assert.Equal(t, Speak("水").Args(), btn.Bindings[0].Args)
	})
}

func TestExamplesView(t *testing.T) {
	t.Run("正常系: 強調と番号付きリスト", func(t *testing.T) {
		result := FindExamples("水", []model.ExampleSentence{
			{Japanese: "水と水", Bangla: "পানি আর পানি"},
		})
		out := render(t, ExamplesView(result, nil))
		assert.Contains(t, out, `<h3>Examples for &#34;水&#34;</h3>`)
		assert.Contains(t, out, `<strong>水</strong>と<strong>水</strong>`)
		assert.Contains(t, out, `<li value="1">`)
		assert.Contains(t, out, `(পানি আর পানি)`)
	})

	t.Run("正常系: 一致なし", func(t *testing.T) {
		n := ExamplesView(ExampleResult{DisplayTerm: "...から"}, nil)
		assert.Equal(t, `No example sentences found for "...から".`, n.TextContent())
	})

	t.Run("異常系: 辞書にない単語", func(t *testing.T) {
		n := ExamplesView(ExampleResult{}, ErrUnknownWord)
		assert.Equal(t, MsgUnknownWord, n.TextContent())
	})

	t.Run("正常系: 例文はエスケープされる", func(t *testing.T) {
		result := FindExamples("<b>", []model.ExampleSentence{{Japanese: "x<b>y", Bangla: "z"}})
		out := render(t, ExamplesView(result, nil))
		assert.Contains(t, out, `x<strong>&lt;b&gt;</strong>y`)
	})
}

func TestMnemonicView(t *testing.T) {
	t.Run("正常系: 写真と出典", func(t *testing.T) {
		n := MnemonicView(MnemonicResult{
			Word:    "পানি",
			Meaning: "水",
			English: "water",
			Photo:   &imagesearch.Photo{PageURL: "https://www.pexels.com/photo/1", ImageURL: "https://images.pexels.com/1.jpg", Photographer: "Hanako"},
		})
		assert.Equal(t, "Photo by Hanako on Pexels", n.Find(view.ByClass("attribution")).TextContent())

		img := n.Find(func(n *view.Node) bool { return n.Tag == "img" })
		require.NotNil(t, img)
		src, _ := img.GetAttr("src")
		assert.Equal(t, "https://images.pexels.com/1.jpg", src)

		link := n.Find(func(n *view.Node) bool { return n.Tag == "a" })
		href, _ := link.GetAttr("href")
		assert.Equal(t, "https://www.pexels.com/photo/1", href)

		assert.NotNil(t, n.Find(view.ByClass("speak-btn")))
	})

	t.Run("正常系: 0件でも単語と読み上げは出す", func(t *testing.T) {
		n := MnemonicView(MnemonicResult{
			Word:     "পানি",
			Meaning:  "水",
			English:  "water",
			NotFound: `No image found for "water".`,
		})
		assert.Equal(t, `No image found for "water".`, n.Find(view.ByClass("no-results")).TextContent())

		word := n.Find(view.ByClass("mnemonic-word"))
		require.NotNil(t, word)
		assert.Equal(t, "পানি", word.Find(view.ByClass("mnemonic-bangla")).TextContent())
		assert.Equal(t, "水", word.Find(view.ByClass("mnemonic-japanese")).TextContent())
		assert.NotNil(t, word.Find(view.ByClass("speak-btn")))
		assert.Nil(t, n.Find(func(n *view.Node) bool { return n.Tag == "img" }))
	})

	t.Run("異常系: エラーはモーダル内に表示", func(t *testing.T) {
		n := MnemonicView(MnemonicResult{ErrorMessage: MsgMissingAPIKey})
		assert.NotNil(t, n.Find(view.ByClass("modal-error")))
		assert.Equal(t, "Pexels API Key not set.", n.TextContent())
	})
}

func TestErrorPageView(t *testing.T) {
	out := render(t, ErrorPageView(MsgNoStudyList))
	assert.Contains(t, out, "No study list found or dictionary data is missing. Please go back and select words to study.")
	assert.NotContains(t, out, IDFlashcard)
}
