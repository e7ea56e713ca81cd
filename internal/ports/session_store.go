package ports

import (
	"context"

	"github.com/bnema/sms-temp/internal/domain"
)

// SessionStore persists the session snapshot. Load always returns a usable
// session; a non-nil error only reports why the defaults were used.
type SessionStore interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
}
