// internal/handlers/study_handler.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"n5_vocab_study/internal/model"
	"n5_vocab_study/internal/service"
	"n5_vocab_study/internal/study"
	"n5_vocab_study/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

type StudyHandler struct {
	service  service.StudyService
	searcher study.ImageSearcher
	logger   *slog.Logger
}

func NewStudyHandler(s service.StudyService, searcher study.ImageSearcher, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{
		service:  s,
		searcher: searcher,
		logger:   logger,
	}
}

// Routes は /study 以下のルートを返します
func (h *StudyHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetStudyPage)
	r.Get(strings.TrimPrefix(study.BinderScriptPath, study.RoutePrefix), study.ServeBinderScript)
	r.Route("/{session_id}", func(r chi.Router) {
		r.Delete("/", h.DeleteSession)
		r.Post("/drill/next", h.PostDrillNext)
		r.Post("/drill/reveal", h.PostDrillReveal)
		r.Get("/examples", h.GetExamples)
		r.Get("/mnemonic", h.GetMnemonic)
	})
	return r
}

// GetStudyPage はハンドオフのトークンか単語リストから学習ページを作るハンドラ
func (h *StudyHandler) GetStudyPage(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudyPage"))
	ctx := r.Context()
	query := r.URL.Query()

	var (
		session *study.Session
		err     error
	)
	if raw := query.Get("handoff"); raw != "" {
		token, perr := uuid.Parse(raw)
		if perr != nil {
			logger.Warn("Invalid handoff token", slog.String("token", raw))
			webutil.RespondWithHTML(w, http.StatusBadRequest, study.ErrorPageView(study.MsgNoStudyList), logger)
			return
		}
		session, err = h.service.StartFromHandoff(ctx, token)
	} else {
		session, err = h.service.StartFromWords(ctx, service.SplitTerms(query.Get("words")))
	}
	if err != nil {
		status := webutil.MapErrorToStatusCode(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Failed to start study session", slog.Any("error", err))
		} else {
			logger.Warn("Study list unavailable", slog.Any("error", err))
			status = http.StatusBadRequest
		}
		webutil.RespondWithHTML(w, status, study.ErrorPageView(study.MsgNoStudyList), logger)
		return
	}

	logger.Info("Study page rendered", slog.String("session_id", session.ID.String()))
	webutil.RespondWithHTML(w, http.StatusOK, study.PageView(session), logger)
}

// PostDrillNext は次の単語のカードを返すハンドラ
func (h *StudyHandler) PostDrillNext(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostDrillNext"))
	session, ok := h.session(w, r, logger)
	if !ok {
		return
	}
	card := session.Next()
	logger.Debug("Drill advanced", slog.String("state", card.State.String()), slog.Int("rounds", card.Rounds))
	webutil.RespondWithHTML(w, http.StatusOK, study.FlashcardView(card, session.Path()), logger)
}

// PostDrillReveal は単語と意味の表示を切り替えたカードを返すハンドラ
func (h *StudyHandler) PostDrillReveal(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostDrillReveal"))
	session, ok := h.session(w, r, logger)
	if !ok {
		return
	}
	card := session.Reveal()
	webutil.RespondWithHTML(w, http.StatusOK, study.FlashcardView(card, session.Path()), logger)
}

// GetExamples は例文モーダルの中身を返すハンドラ
func (h *StudyHandler) GetExamples(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetExamples"))
	session, ok := h.session(w, r, logger)
	if !ok {
		return
	}
	word := norm.NFC.String(r.URL.Query().Get("word"))
	result, err := session.Examples(word)
	if err != nil {
		logger.Info("Examples requested for unknown word", slog.String("word", word))
	}
	webutil.RespondWithHTML(w, http.StatusOK, study.ExamplesView(result, err), logger)
}

// GetMnemonic は記憶用画像モーダルの中身を返すハンドラ
func (h *StudyHandler) GetMnemonic(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMnemonic"))
	session, ok := h.session(w, r, logger)
	if !ok {
		return
	}
	word := norm.NFC.String(r.URL.Query().Get("word"))
	result := session.Mnemonic(r.Context(), logger, h.searcher, word)
	webutil.RespondWithHTML(w, http.StatusOK, study.MnemonicView(result), logger)
}

// DeleteSession はページを閉じたときにセッションを破棄するハンドラ
func (h *StudyHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteSession"))
	id, err := uuid.Parse(chi.URLParam(r, "session_id"))
	if err != nil {
		webutil.HandleError(w, logger, sessionNotFound(err))
		return
	}
	if err := h.service.End(r.Context(), id); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StudyHandler) session(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*study.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "session_id"))
	if err != nil {
		logger.Warn("Invalid session id", slog.String("session_id", chi.URLParam(r, "session_id")))
		webutil.HandleError(w, logger, sessionNotFound(err))
		return nil, false
	}
	session, err := h.service.Session(r.Context(), id)
	if err != nil {
		logger.Warn("Study session not found", slog.String("session_id", id.String()))
		webutil.HandleError(w, logger, err)
		return nil, false
	}
	return session, true
}

func sessionNotFound(err error) error {
	return model.NewAppError("SESSION_NOT_FOUND", "Study session not found.", "", fmt.Errorf("%w: %v", model.ErrNotFound, err))
}
