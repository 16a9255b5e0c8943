package bootstrap

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAudit struct {
	mu      sync.Mutex
	actions []string
}

func (r *recordingAudit) Log(_ context.Context, entry AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, entry.Action)
}

func TestStartHTTPServer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	audit := &recordingAudit{}

	done := make(chan error, 1)
	go func() {
		done <- StartHTTPServer(ctx, http.NotFoundHandler(), ServerConfig{Port: "0", ShutdownTimeout: time.Second}, audit)
	}()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{"SERVER_START", "SERVER_SHUTDOWN"}, audit.actions)
}

func TestStartHTTPServer_ListenError(t *testing.T) {
	audit := &recordingAudit{}
	err := StartHTTPServer(context.Background(), http.NotFoundHandler(), ServerConfig{Port: "-1"}, audit)
	assert.Error(t, err)
}
