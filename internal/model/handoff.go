// internal/model/handoff.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudyHandoff は単語選択ページから学習ページへ渡す一度きりのデータ
type StudyHandoff struct {
	Token      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"token"`
	Words      []string   `gorm:"serializer:json;not null" json:"words"`
	Dictionary Dictionary `gorm:"serializer:json" json:"dictionary,omitempty"`
	CreatedAt  time.Time  `json:"timestamp"`
	ExpiresAt  time.Time  `gorm:"not null;index" json:"expires_at"`
}

func (StudyHandoff) TableName() string {
	return "study_handoffs"
}

// Expired は now の時点で有効期限切れかを返します
func (h *StudyHandoff) Expired(now time.Time) bool {
	return !now.Before(h.ExpiresAt)
}

// CreateHandoffRequest は POST /api/handoffs のリクエストボディ
type CreateHandoffRequest struct {
	Words      []string   `json:"words" validate:"required,min=1,dive,required"`
	Dictionary Dictionary `json:"dictionary,omitempty"`
}

// HandoffResponse は作成されたハンドオフの参照
type HandoffResponse struct {
	Token     uuid.UUID `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
