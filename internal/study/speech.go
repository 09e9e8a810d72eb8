package study

import "strconv"

const (
	SpeechLang = "ja-JP"
	SpeechRate = 0.9
)

// SpeechRequest はブラウザの音声合成に渡す発話要求。
// 送りっぱなしで、再生中の発話は先に止める。
type SpeechRequest struct {
	Text           string
	Lang           string
	Rate           float64
	CancelPrevious bool
}

// Speak は日本語で text を読み上げる要求を作ります
func Speak(text string) SpeechRequest {
	return SpeechRequest{
		Text:           text,
		Lang:           SpeechLang,
		Rate:           SpeechRate,
		CancelPrevious: true,
	}
}

// Args はバインディング引数に変換します
func (r SpeechRequest) Args() map[string]string {
	return map[string]string{
		"text":   r.Text,
		"lang":   r.Lang,
		"rate":   strconv.FormatFloat(r.Rate, 'f', -1, 64),
		"cancel": strconv.FormatBool(r.CancelPrevious),
	}
}
