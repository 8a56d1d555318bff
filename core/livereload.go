package core

import (
	"context"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
)

// ReloadPath is where the preview page opens its reload socket.
const ReloadPath = "/__ogimage_reload"

const (
	reloadMessage     = "reload"
	reloadWriteWindow = 2 * time.Second
)

type LiveReloaderInterface interface {
	BroadcastReload()
	Handler(http.ResponseWriter, *http.Request)
}

// LiveReloader keeps a socket to every open preview page. When the config
// file changes the dev server rebuilds its handler and calls
// BroadcastReload, and each page re-requests its sample cards.
type LiveReloader struct {
	mu       sync.Mutex
	pages    map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

var NewLiveReloader = func() LiveReloaderInterface {
	return &LiveReloader{
		pages: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// Preview pages are served from the same dev server on any host name.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler upgrades a preview page's request and holds the socket until the
// page goes away. Pages never send anything; reads only detect the close.
func (lr *LiveReloader) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := lr.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	lr.track(conn)

	go func() {
		defer lr.drop(conn)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()
}

// BroadcastReload asks every open preview page to refresh. Pages that
// cannot be written to within reloadWriteWindow are dropped.
func (lr *LiveReloader) BroadcastReload() {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	for conn := range lr.pages {
		conn.SetWriteDeadline(time.Now().Add(reloadWriteWindow))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reloadMessage)); err != nil {
			conn.Close()
			delete(lr.pages, conn)
		}
	}
}

// OpenPages reports how many preview pages are connected.
func (lr *LiveReloader) OpenPages() int {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return len(lr.pages)
}

func (lr *LiveReloader) track(conn *websocket.Conn) {
	lr.mu.Lock()
	lr.pages[conn] = struct{}{}
	lr.mu.Unlock()
}

func (lr *LiveReloader) drop(conn *websocket.Conn) {
	lr.mu.Lock()
	delete(lr.pages, conn)
	lr.mu.Unlock()
	conn.Close()
}

// WatchFile calls onChange whenever path is written, created or renamed
// into place. The directory is watched so editors that replace the file
// are still seen. It blocks until ctx is done.
func WatchFile(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
