package study

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"n5_vocab_study/internal/view"
)

// クライアント側のバインダが解釈するアクション名
const (
	ActionFetch      = "fetch"
	ActionSpeak      = "speak"
	ActionCloseModal = "close-modal"
	ActionEndSession = "end-session"
)

// 画面の要素ID
const (
	IDFlashcard         = "flashcard"
	IDNextButton        = "get-study-word-btn"
	IDRevealButton      = "show-study-meaning-btn"
	IDStudyList         = "study-list"
	IDSentenceModal     = "sentence-modal"
	IDSentenceModalBody = "sentence-modal-body"
	IDMnemonicModal     = "mnemonic-modal"
	IDMnemonicModalBody = "mnemonic-modal-body"
)

// FlipDurationMS はカード反転アニメーションの長さ (表示上のヒントのみ)
const FlipDurationMS = 300

const pageTitle = "N5 Vocabulary Study"

func fetchArgs(method, target, rawURL string) map[string]string {
	return map[string]string{
		"method": method,
		"target": target,
		"url":    rawURL,
	}
}

func wordURL(base, word string) string {
	return base + "?" + url.Values{"word": {word}}.Encode()
}

func speakButton(text string) *view.Node {
	return view.El("button", view.Text("🔊")).
		Class("speak-btn").
		Attr("type", "button").
		Attr("aria-label", "Speak").
		On("click", ActionSpeak, Speak(text).Args())
}

// PageView は学習画面全体を組み立てます
func PageView(s *Session) *view.Node {
	path := s.Path()

	list := view.El("ul").ID(IDStudyList)
	for _, item := range s.Items() {
		li := view.El("li",
			view.El("span", view.Text(item.Word)).Class("study-word"),
			view.El("span", view.Text(item.Entry.Meaning)).Class("study-meaning"),
			view.El("span", view.Text(item.Entry.Category)).Class("study-category"),
			speakButton(item.Entry.Meaning),
			view.El("button", view.Text("Examples")).
				Class("examples-btn").
				Attr("type", "button").
				On("click", ActionFetch, withOpen(fetchArgs(http.MethodGet, IDSentenceModalBody, wordURL(path+"/examples", item.Word)), IDSentenceModal)),
		).Class("study-item")
		if item.Entry.English != "" {
			li.Append(view.El("button", view.Text("Mnemonic")).
				Class("mnemonic-btn").
				Attr("type", "button").
				On("click", ActionFetch, withOpen(fetchArgs(http.MethodGet, IDMnemonicModalBody, wordURL(path+"/mnemonic", item.Word)), IDMnemonicModal)))
		}
		list.Append(li)
	}

	app := view.El("div",
		view.El("h1", view.Text("Study Session")),
		view.El("div",
			view.El("section", FlashcardView(s.Card(), path)).ID("random-word-container"),
			view.El("section",
				view.El("h2", view.Text(fmt.Sprintf("Your Study List (%d words)", s.WordCount()))),
				list,
			).ID("study-list-container"),
		).Class("study-grid"),
		modal(IDSentenceModal, IDSentenceModalBody),
		modal(IDMnemonicModal, IDMnemonicModalBody),
	).ID("study-app").
		Attr("data-session", s.ID.String()).
		On("pagehide", ActionEndSession, map[string]string{"method": http.MethodDelete, "url": path})

	return view.Document(pageTitle, app, view.Script(BinderScriptPath))
}

func withOpen(args map[string]string, modalID string) map[string]string {
	args["open"] = modalID
	return args
}

func modal(id, bodyID string) *view.Node {
	return view.El("div",
		view.El("div",
			view.El("button", view.Text("×")).
				Class("close-btn").
				Attr("type", "button").
				On("click", ActionCloseModal, map[string]string{"target": id}),
			view.El("div").ID(bodyID),
		).Class("modal-content"),
	).ID(id).Class("modal").Attr("hidden", "")
}

// FlashcardView はフラッシュカード部分を組み立てます
func FlashcardView(card Card, path string) *view.Node {
	class := "flashcard"
	if card.State == StateShowingMeaning {
		class += " is-flipped"
	}

	content := view.El("div").ID("flashcard-content")
	switch {
	case card.Empty:
		content.Append(view.El("p", view.Text(MsgNothingToPractice)).Class("flashcard-hint"))
	case card.State == StateIdle:
		content.Append(view.El("p", view.Text(`Click "Start Practice" to begin.`)).Class("flashcard-hint"))
	case card.State == StateShowingWord:
		content.Append(view.El("p", view.Text(card.Word)).Class("flashcard-word"))
	case card.State == StateShowingMeaning:
		content.Append(
			view.El("p", view.Text(card.Meaning)).Class("flashcard-meaning"),
			speakButton(card.Meaning),
		)
	}

	controls := view.El("div",
		view.El("button", view.Text(card.NextLabel)).
			ID(IDNextButton).
			Attr("type", "button").
			On("click", ActionFetch, fetchArgs(http.MethodPost, IDFlashcard, path+"/drill/next")),
	).Class("flashcard-controls")
	if card.State != StateIdle {
		controls.Append(view.El("button", view.Text(card.RevealLabel)).
			ID(IDRevealButton).
			Attr("type", "button").
			On("click", ActionFetch, fetchArgs(http.MethodPost, IDFlashcard, path+"/drill/reveal")))
	}

	return view.El("div", content, controls).
		ID(IDFlashcard).
		Class(class).
		Attr("data-state", card.State.String()).
		Attr("data-flip-ms", strconv.Itoa(FlipDurationMS))
}

// ExamplesView は例文モーダルの中身を組み立てます
func ExamplesView(result ExampleResult, err error) *view.Node {
	body := view.El("div").ID(IDSentenceModalBody)
	if err != nil {
		return body.Append(view.El("p", view.Text(MsgUnknownWord)).Class("modal-error"))
	}
	if len(result.Matches) == 0 {
		return body.Append(view.El("p", view.Text(fmt.Sprintf(`No example sentences found for "%s".`, result.DisplayTerm))).Class("no-results"))
	}

	list := view.El("ol").Class("example-list")
	for _, m := range result.Matches {
		jp := view.El("p").Class("example-jp")
		for _, seg := range m.Segments {
			if seg.Highlight {
				jp.Append(view.El("strong", view.Text(seg.Text)))
				continue
			}
			jp.Append(view.Text(seg.Text))
		}
		jp.Append(speakButton(m.Sentence.Japanese))
		list.Append(view.El("li",
			jp,
			view.El("p", view.Text("("+m.Sentence.Bangla+")")).Class("example-bn"),
		).Attr("value", strconv.Itoa(m.Number)))
	}
	return body.Append(
		view.El("h3", view.Text(fmt.Sprintf(`Examples for "%s"`, result.DisplayTerm))),
		list,
	)
}

// MnemonicView は記憶用画像モーダルの中身を組み立てます
func MnemonicView(result MnemonicResult) *view.Node {
	body := view.El("div").ID(IDMnemonicModalBody)
	if result.ErrorMessage != "" {
		return body.Append(view.El("p", view.Text(result.ErrorMessage)).Class("modal-error"))
	}

	// 画像が見つからなくても単語と読み上げボタンは出す
	body.Append(view.El("div",
		view.El("span", view.Text(result.Word)).Class("mnemonic-bangla"),
		view.El("span", view.Text(result.Meaning)).Class("mnemonic-japanese"),
		speakButton(result.Meaning),
	).Class("mnemonic-word"))
	if result.Photo == nil {
		return body.Append(view.El("p", view.Text(result.NotFound)).Class("no-results"))
	}

	photo := result.Photo
	return body.Append(
		view.El("a",
			view.El("img").Attr("src", photo.ImageURL).Attr("alt", result.English),
		).Attr("href", photo.PageURL).Attr("target", "_blank").Attr("rel", "noopener noreferrer"),
		view.El("p", view.Text(fmt.Sprintf("Photo by %s on Pexels", photo.Photographer))).Class("attribution"),
	)
}

// ErrorPageView はページ単位のエラー画面です
func ErrorPageView(message string) *view.Node {
	return view.Document(pageTitle,
		view.El("div",
			view.El("h1", view.Text("Error")),
			view.El("p", view.Text(message)).Class("page-error"),
			view.El("a", view.Text("Back to word list")).Attr("href", "/"),
		).ID("study-app"),
	)
}
