package study

import (
	_ "embed"
	"net/http"
)

// BinderScriptPath は学習画面のバインダを配信するパス
const BinderScriptPath = RoutePrefix + "/static/study.js"

//go:embed static/study.js
var binderScript []byte

// BinderScript は data-on-* 属性にイベントを結びつけるクライアントスクリプトを返します
func BinderScript() []byte {
	return binderScript
}

// ServeBinderScript はバインダを JavaScript として返すハンドラ
func ServeBinderScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(binderScript)
}
