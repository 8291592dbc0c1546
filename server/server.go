/*
File    : pepega/server/server.go
Package : server

Package server exposes Pepega's interactive evaluator over WebSocket:
`pepega server <port>` lets a remote client open one connection and
send source text a line at a time, the way the local REPL does, and
get back whatever that line's "chatting" statements print plus any
error. Grounded on go-chariot's mcp/ws_transport.go for the
websocket.Upgrader/TextMessage plumbing, adapted from its
io.ReadWriteCloser framing to a direct per-message eval loop since
Pepega has no JSON-RPC envelope to decode.
*/
package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/KunalKatiyar/pepega/interpreter"
	"github.com/KunalKatiyar/pepega/internal/applog"
	"github.com/KunalKatiyar/pepega/lexer"
	"github.com/KunalKatiyar/pepega/parser"
)

var upgrader = websocket.Upgrader{
	// Origin checking is the embedder's problem (reverse proxy, auth
	// middleware); a bare interpreter socket has no session of its own
	// to protect beyond what the process environment already grants.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server answers one WebSocket connection per Pepega session. Each
// connection gets its own *interpreter.Interpreter, so state persists
// across messages on that connection but never leaks across clients.
type Server struct {
	Log applog.Logger
}

// New creates a Server; log receives one structured entry per
// connection opened/closed and per line that fails at runtime or panics.
func New(log applog.Logger) *Server {
	if log == nil {
		log = applog.NewNop()
	}
	return &Server{Log: log}
}

// Handler returns the http.Handler to mount at the server's WebSocket
// path (conventionally "/").
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.handle)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	s.Log.Info("session opened", zap.String("session_id", sessionID))
	defer s.Log.Info("session closed", zap.String("session_id", sessionID))

	out := &frameWriter{conn: conn}
	in := interpreter.New(out)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		s.evalLine(sessionID, string(data), in, out)
	}
}

func (s *Server) evalLine(sessionID, line string, in *interpreter.Interpreter, out *frameWriter) {
	defer func() {
		if rec := recover(); rec != nil {
			s.Log.Error("panic evaluating line", zap.String("session_id", sessionID), zap.Any("panic", rec))
			out.writeLine("[runtime error] internal fault")
		}
	}()

	hadLexError := false
	lx := lexer.New(line, func(lineNo int, message string) {
		hadLexError = true
		out.writeLinef("[line %d] Error: %s", lineNo, message)
	})
	tokens := lx.ScanTokens()

	p := parser.New(tokens)
	statements := p.Parse()
	if p.HasErrors() {
		for _, pe := range p.Errors {
			out.writeLine(pe.Error())
		}
		return
	}
	if hadLexError {
		return
	}

	if err := in.Interpret(statements); err != nil {
		s.Log.Debug("runtime error", zap.String("session_id", sessionID), zap.Error(err))
		out.writeLine(err.Error())
	}
}

// ListenAndServe starts an HTTP server bound to addr serving the
// WebSocket handler at "/". It blocks until the server stops.
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/", s.Handler())
	return http.ListenAndServe(addr, mux)
}
