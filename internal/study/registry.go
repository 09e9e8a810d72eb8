package study

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

// Registry は生きているセッションを保持します。ttl 以上アクセスのないセッションは破棄する。
type Registry struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[uuid.UUID]*registryEntry
}

type RegistryOption func(*Registry)

// WithClock は現在時刻の取得関数を差し替えます (テスト用)
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		r.now = now
	}
}

// NewRegistry は ttl <= 0 なら期限切れなしのレジストリを作ります
func NewRegistry(ttl time.Duration, opts ...RegistryOption) *Registry {
	r := &Registry{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uuid.UUID]*registryEntry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.sweepLocked(now)
	r.entries[s.ID] = &registryEntry{session: s, lastSeen: now}
}

// Get はセッションを返し、最終アクセス時刻を更新します
func (r *Registry) Get(id uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	if r.expired(e, now) {
		delete(r.entries, id)
		return nil, false
	}
	e.lastSeen = now
	return e.session, true
}

func (r *Registry) Remove(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	return true
}

// Sweep は期限切れのセッションを破棄し、破棄した数を返します
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked(r.now())
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) sweepLocked(now time.Time) int {
	removed := 0
	for id, e := range r.entries {
		if r.expired(e, now) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) expired(e *registryEntry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) >= r.ttl
}
