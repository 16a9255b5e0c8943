package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-outtime/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	ev, err := kafka.NewEvent("rid-1", "employee", "emp-1", "workday.started", "outtime.workday.v1",
		map[string]string{"status": "work"})
	require.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, kafka.StatusPending, ev.Status)
	assert.JSONEq(t, `{"status":"work"}`, string(ev.Payload))

	_, err = kafka.NewEvent("", "employee", "", "workday.started", "outtime.workday.v1", struct{}{})
	assert.ErrorContains(t, err, "aggregate id")
}

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ev, err := kafka.NewEvent("", "employee", "emp-1", "employee.registered", "outtime.employee.lifecycle.v1", struct{}{})
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(ev.ID, "", "employee", "emp-1", "employee.registered", "outtime.employee.lifecycle.v1", ev.Payload, kafka.StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kafka.NewOutboxRepository(db).Create(context.Background(), ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = kafka.NewOutboxRepository(db).Create(context.Background(), kafka.Event{ID: "x", Status: kafka.StatusSent})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_FetchDue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	due := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id",
		"event_type", "topic", "payload", "status", "retry_count", "due_at"}).
		AddRow("e-1", "", "employee", "emp-1", "workday.ended", "outtime.workday.v1", []byte(`{}`), kafka.StatusFailed, 2, due)

	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(kafka.StatusPending, kafka.StatusFailed, 50).
		WillReturnRows(rows)

	got, err := kafka.NewOutboxRepository(db).FetchDue(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Attempts)
	assert.Equal(t, due, got[0].DueAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("e-1", kafka.StatusFailed, kafka.MaxAttempts, kafka.StatusDead, "broker unavailable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "e-1", "broker unavailable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_PurgeSentInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	before := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM outbox_events")).
		WithArgs(kafka.StatusSent, before).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	n, err := kafka.NewOutboxRepository(db).WithTx(tx).PurgeSent(context.Background(), before)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
