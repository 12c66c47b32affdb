package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jhonstore/admin-console/internal/model"
)

// Holder owns the session lifecycle: no session, active, expired. Expiry is
// detected lazily on read; a corrupt stored record is treated exactly like
// no session, cleared and logged, never surfaced to the caller as an error.
type Holder struct {
	store Store
	ttl   time.Duration
	log   *slog.Logger
}

func NewHolder(store Store, ttl time.Duration, log *slog.Logger) *Holder {
	return &Holder{store: store, ttl: ttl, log: log}
}

// Start creates a session record for the user and returns its opaque token.
func (h *Holder) Start(ctx context.Context, user *model.User) (string, *model.Session, error) {
	rec := &model.Session{
		UserID:    user.ID,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: time.Now().UnixMilli(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", nil, fmt.Errorf("encode session: %w", err)
	}
	token := uuid.NewString()
	if err := h.store.Put(ctx, token, data, h.ttl); err != nil {
		return "", nil, err
	}
	return token, rec, nil
}

// Current returns the active session for the token, or nil when there is
// none. Corrupt and expired records are deleted as a side effect.
func (h *Holder) Current(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, nil
	}
	data, err := h.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	rec, expiresAt, err := decodeRecord(data)
	if err != nil {
		h.log.Warn("clearing corrupt session record", "error", err)
		_ = h.store.Delete(ctx, token)
		return nil, nil
	}

	now := time.Now()
	expired := rec.CreatedAt > 0 && rec.Age(now) > h.ttl
	if !expired && expiresAt > 0 {
		expired = now.UnixMilli() > expiresAt
	}
	if expired {
		h.log.Info("session expired", "user_id", rec.UserID)
		_ = h.store.Delete(ctx, token)
		return nil, nil
	}
	return rec, nil
}

// End removes the session record.
func (h *Holder) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return h.store.Delete(ctx, token)
}

// storedRecord covers every record shape still in circulation: the current
// flat {id, name, role, createdAt}, the variant nesting the user fields, and
// records carrying timestamp or an explicit expiresAt.
type storedRecord struct {
	model.Session
	Timestamp int64 `json:"timestamp"`
	ExpiresAt int64 `json:"expiresAt"`
	User      *struct {
		ID   int        `json:"id"`
		Name string     `json:"name"`
		Role model.Role `json:"role"`
	} `json:"user"`
}

func decodeRecord(data []byte) (*model.Session, int64, error) {
	var raw storedRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decode session record: %w", err)
	}
	rec := raw.Session
	if raw.User != nil {
		if rec.UserID == 0 {
			rec.UserID = raw.User.ID
		}
		if rec.Name == "" {
			rec.Name = raw.User.Name
		}
		if rec.Role == "" {
			rec.Role = raw.User.Role
		}
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = raw.Timestamp
	}
	return &rec, raw.ExpiresAt, nil
}
