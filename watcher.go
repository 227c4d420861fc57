package pubfolio

import (
	"context"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ContentWatcher calls onChange whenever a content file in dir is created,
// written, removed or renamed.
type ContentWatcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	ext      string
	onChange func()
	logger   *zap.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewContentWatcher registers dir with a new fsnotify watcher. Call Start to
// process events and Stop to release the watcher.
func NewContentWatcher(dir, ext string, onChange func(), logger *zap.Logger) (*ContentWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentWatcher{
		watcher:  w,
		dir:      dir,
		ext:      ext,
		onChange: onChange,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start processes events in a goroutine until ctx is done or Stop is called.
func (cw *ContentWatcher) Start(ctx context.Context) {
	go cw.run(ctx)
}

func (cw *ContentWatcher) run(ctx context.Context) {
	defer close(cw.doneCh)
	for {
		select {
		case <-ctx.Done():
			return
		case <-cw.stopCh:
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			cw.handleEvent(event)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Error("content watcher", zap.Error(err))
		}
	}
}

func (cw *ContentWatcher) handleEvent(event fsnotify.Event) {
	if cw.ext != "" && !strings.HasSuffix(event.Name, cw.ext) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	cw.logger.Debug("content changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
	cw.onChange()
}

// Stop ends the event loop started by Start and closes the underlying
// watcher. It must only be called after Start.
func (cw *ContentWatcher) Stop() error {
	var err error
	cw.stopOnce.Do(func() {
		close(cw.stopCh)
		<-cw.doneCh
		err = cw.watcher.Close()
	})
	return err
}
