package tests

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	httpapi "overcooked-orders/order-svc/internal/api/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartServer_ListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, errCh := httpapi.StartServer(busy.Addr().String(), http.NotFoundHandler(), log)
	defer srv.Close()

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listen error was not reported")
	}
}

func TestStartServer_ShutdownReportsNothing(t *testing.T) {
	free, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := free.Addr().String()
	require.NoError(t, free.Close())

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, errCh := httpapi.StartServer(addr, http.NotFoundHandler(), log)

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, srv.Shutdown(context.Background()))
	select {
	case err := <-errCh:
		t.Fatalf("unexpected serve error after shutdown: %v", err)
	case <-time.After(100 * time.Millisecond):
	}
}
