package server

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// reloadClient is appended to served HTML pages when live reload is on.
const reloadClient = `<script>(function(){var ws=new WebSocket((location.protocol==="https:"?"wss://":"ws://")+location.host+"/livereload");ws.onmessage=function(){location.reload();};})();</script>`

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadHub tracks connected browsers and tells them to reload when the
// site directory changes.
type reloadHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newReloadHub() *reloadHub {
	return &reloadHub{conns: make(map[*websocket.Conn]bool)}
}

// handle upgrades a browser connection and keeps it registered until it
// closes.
func (h *reloadHub) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("livereload: websocket upgrade failed", "reason", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	// Drain until the browser disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// broadcast tells every connected browser to reload.
func (h *reloadHub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			slog.Warn("livereload: websocket write failed", "reason", err)
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// watch polls the site directory's newest modification time and
// broadcasts a reload whenever it advances.
func (h *reloadHub) watch(ctx context.Context, dir string, interval time.Duration) {
	last := latestMtime(dir)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if current := latestMtime(dir); current.After(last) {
				last = current
				h.broadcast()
			}
		}
	}
}

// latestMtime returns the newest modification time under dir.
func latestMtime(dir string) time.Time {
	var latest time.Time
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil && info.ModTime().After(latest) {
			latest = info.ModTime()
		}
		return nil
	})
	return latest
}
