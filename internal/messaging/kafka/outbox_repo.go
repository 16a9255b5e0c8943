package kafka

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
	// StatusDead rows are never picked up again; they stay for inspection.
	StatusDead = "dead"

	// MaxAttempts is how many failed publishes an event survives.
	MaxAttempts = 8
)

// Event is one row of outbox_events. It is written in the same transaction as
// the state change it describes and relayed to Kafka later.
type Event struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	Attempts      int
	DueAt         time.Time
}

func NewEvent(requestID, aggregateType, aggregateID, eventType, topic string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("encode %s: %w", eventType, err)
	}
	ev := Event{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       raw,
		Status:        StatusPending,
	}
	return ev, ev.Validate()
}

func (e Event) Validate() error {
	switch {
	case e.ID == "":
		return errors.New("outbox: id is required")
	case e.AggregateID == "":
		return errors.New("outbox: aggregate id is required")
	case e.EventType == "":
		return errors.New("outbox: event type is required")
	case e.Topic == "":
		return errors.New("outbox: topic is required")
	case len(e.Payload) == 0:
		return errors.New("outbox: payload is required")
	case e.Status != StatusPending:
		return fmt.Errorf("outbox: new events must be %s, got %q", StatusPending, e.Status)
	}
	return nil
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock
type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, ev Event) error
	FetchDue(ctx context.Context, limit int) ([]Event, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
	PurgeSent(ctx context.Context, before time.Time) (int64, error)
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

type execer interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
}

func (r *outboxRepository) q() execer {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *outboxRepository) Create(ctx context.Context, ev Event) error {
	if err := ev.Validate(); err != nil {
		return err
	}
	_, err := r.q().ExecContext(ctx,
		`INSERT INTO outbox_events
			(id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)`,
		ev.ID, ev.RequestID, ev.AggregateType, ev.AggregateID, ev.EventType, ev.Topic, ev.Payload, ev.Status,
	)
	return err
}

// FetchDue returns pending events and failed events whose retry time has
// passed, oldest first.
func (r *outboxRepository) FetchDue(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q().QueryContext(ctx,
		`SELECT id::text, COALESCE(request_id, ''), aggregate_type, aggregate_id::text,
			event_type, topic, payload, status, retry_count, COALESCE(next_retry_at, created_at)
		FROM outbox_events
		WHERE status IN ($1, $2) AND COALESCE(next_retry_at, created_at) <= NOW()
		ORDER BY created_at
		LIMIT $3`,
		StatusPending, StatusFailed, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		err := rows.Scan(&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID,
			&e.EventType, &e.Topic, &e.Payload, &e.Status, &e.Attempts, &e.DueAt)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.q().ExecContext(ctx,
		`UPDATE outbox_events
		SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
		WHERE id = $1`,
		id, StatusSent,
	)
	return err
}

// MarkFailed waits 30s times the attempt count before the next try and
// buries the event once MaxAttempts is reached.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	_, err := r.q().ExecContext(ctx,
		`UPDATE outbox_events
		SET retry_count = retry_count + 1,
			status = CASE WHEN retry_count + 1 >= $3 THEN $4 ELSE $2 END,
			error_message = LEFT($5, 500),
			next_retry_at = NOW() + (retry_count + 1) * INTERVAL '30 seconds',
			updated_at = NOW()
		WHERE id = $1`,
		id, StatusFailed, MaxAttempts, StatusDead, reason,
	)
	return err
}

func (r *outboxRepository) PurgeSent(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.q().ExecContext(ctx,
		`DELETE FROM outbox_events WHERE status = $1 AND processed_at < $2`,
		StatusSent, before,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
