package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/domain/notification"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra"
	sqlc "github.com/benjietrozo-hub/labmate-guardian-sub000/internal/infra/sqlc/generated"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/clock"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OutboxQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
}

// OutboxGateway queues intents as rows in notification_jobs for an external sender.
type OutboxGateway struct {
	queries OutboxQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

func NewOutboxGateway(queries OutboxQueries, db sqlc.DBTX, clk clock.Clock) *OutboxGateway {
	return &OutboxGateway{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (g *OutboxGateway) Deliver(ctx context.Context, in notification.Intent) error {
	payload, err := json.Marshal(in.Payload)
	if err != nil {
		return err
	}
	err = g.queries.CreateNotificationJob(ctx, g.db, sqlc.CreateNotificationJobParams{
		ID:          uuid.New(),
		Kind:        string(in.Kind),
		Topic:       topicOf(in.Kind),
		RecipientID: in.RecipientID,
		Payload:     payload,
		RunAt:       pgconv.TimeToPgtype(g.clock.Now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// topicOf groups kinds by their leading word: reservation, waitlist, borrow, equipment.
func topicOf(kind notification.Kind) string {
	topic, _, _ := strings.Cut(string(kind), "_")
	return topic
}

// LogGateway writes intents to the structured log. Used in development and tests.
type LogGateway struct{}

func NewLogGateway() *LogGateway {
	return &LogGateway{}
}

func (LogGateway) Deliver(ctx context.Context, in notification.Intent) error {
	slog.InfoContext(ctx, "notification",
		"kind", in.Kind,
		"recipient_id", in.RecipientID,
		"payload", in.Payload)
	return nil
}
