/*
File    : pepega/server/frame_writer.go
Package : server
*/
package server

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// frameWriter adapts a *websocket.Conn to io.Writer: every Write call
// becomes one WebSocket text frame. This is what the interpreter's
// "chatting" output and the eval loop's error lines are sent through.
type frameWriter struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (f *frameWriter) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (f *frameWriter) writeLine(s string) {
	f.Write([]byte(s + "\n"))
}

func (f *frameWriter) writeLinef(format string, args ...interface{}) {
	f.writeLine(fmt.Sprintf(format, args...))
}
