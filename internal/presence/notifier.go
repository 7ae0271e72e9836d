package presence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gustydev/messenger-api/internal/user"
	models "github.com/gustydev/messenger-api/internal/user/model"
	"github.com/gustydev/messenger-api/pkg/logger"
)

type StatusEvent struct {
	UserID uuid.UUID `json:"userId"`
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// Notifier flips a user's presence status on connect/disconnect and
// broadcasts the change. Both writes are best-effort: a failure is logged
// and never propagates into the request path that triggered it.
type Notifier struct {
	users  user.UserRepository
	pub    Publisher
	logger logger.Logger
}

func NewNotifier(users user.UserRepository, pub Publisher, logger logger.Logger) *Notifier {
	return &Notifier{users: users, pub: pub, logger: logger}
}

func (n *Notifier) Connected(ctx context.Context, userID uuid.UUID) {
	if err := n.users.UpdateStatus(ctx, userID, models.StatusOnline, nil); err != nil {
		n.logger.Warn("failed to mark user online", "user_id", userID, "err", err)
	}
	n.broadcast(ctx, userID, models.StatusOnline)
}

func (n *Notifier) Disconnected(ctx context.Context, userID uuid.UUID) {
	now := time.Now()
	if err := n.users.UpdateStatus(ctx, userID, models.StatusOffline, &now); err != nil {
		n.logger.Warn("failed to mark user offline", "user_id", userID, "err", err)
	}
	n.broadcast(ctx, userID, models.StatusOffline)
}

func (n *Notifier) broadcast(ctx context.Context, userID uuid.UUID, status string) {
	if n.pub == nil {
		return
	}
	event := StatusEvent{UserID: userID, Status: status, At: time.Now()}
	if err := n.pub.Publish(ctx, EventPresence, event); err != nil {
		n.logger.Warn("presence broadcast failed", "user_id", userID, "err", err)
	}
}
