package ports

import (
	"context"

	"github.com/bnema/cardsort-cli/internal/domain"
)

type SessionRepository interface {
	Load(ctx context.Context) (domain.SessionSnapshot, error)
	Save(ctx context.Context, snapshot domain.SessionSnapshot) error
	Clear(ctx context.Context) error
}
