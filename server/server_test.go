/*
File    : pepega/server/server_test.go
Package : server
*/
package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/KunalKatiyar/pepega/internal/applog"
)

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readLine(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	return strings.TrimRight(string(data), "\n")
}

func TestServer_EvaluatesOneLinePerMessage(t *testing.T) {
	srv := New(applog.NewNop())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dial(t, ts)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`chatting 1 + 2;`)))
	require.Equal(t, "3", readLine(t, conn))
}

func TestServer_StatePersistsAcrossMessagesOnOneConnection(t *testing.T) {
	srv := New(applog.NewNop())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dial(t, ts)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`lulw x = 41;`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`chatting x + 1;`)))
	require.Equal(t, "42", readLine(t, conn))
}

func TestServer_TwoConnectionsDoNotShareState(t *testing.T) {
	srv := New(applog.NewNop())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	a := dial(t, ts)
	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`lulw x = 1;`)))

	b := dial(t, ts)
	require.NoError(t, b.WriteMessage(websocket.TextMessage, []byte(`chatting x;`)))
	line := readLine(t, b)
	require.Contains(t, line, "Undefined variable 'x'.")
}

func TestServer_ReportsParseErrorOnOneLine(t *testing.T) {
	srv := New(applog.NewNop())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	conn := dial(t, ts)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`lulw x = ;`)))
	line := readLine(t, conn)
	require.Contains(t, line, "Error")
}
