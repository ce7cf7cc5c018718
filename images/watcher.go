package images

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Update is a changed image file, decoded off the frame loop.
type Update struct {
	Name  string
	Image image.Image
	Err   error
}

// Watcher reports image files written or created in a directory.
type Watcher struct {
	w       *fsnotify.Watcher
	updates chan Update
	errs    chan error
}

// Watch starts watching dir.
func Watch(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	iw := &Watcher{w: w, updates: make(chan Update, 16), errs: make(chan error, 1)}
	go iw.loop()
	return iw, nil
}

func (iw *Watcher) loop() {
	defer close(iw.updates)
	for {
		select {
		case ev, ok := <-iw.w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 || !IsImageFile(ev.Name) {
				continue
			}
			img, err := Decode(ev.Name)
			iw.updates <- Update{Name: filepath.Base(ev.Name), Image: img, Err: err}
		case err, ok := <-iw.w.Errors:
			if !ok {
				return
			}
			select {
			case iw.errs <- err:
			default:
			}
		}
	}
}

// Updates delivers decoded changes. Closed when the watcher stops.
func (iw *Watcher) Updates() <-chan Update { return iw.updates }

// Errors delivers watcher errors. One unread error is buffered; later ones are dropped.
func (iw *Watcher) Errors() <-chan error { return iw.errs }

// Close stops watching.
func (iw *Watcher) Close() error { return iw.w.Close() }
