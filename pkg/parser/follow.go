package parser

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/basalt-tools/peek/pkg/mylog"
)

// followReader wraps an *os.File so that reaching EOF blocks until fsnotify
// reports the file grew, instead of signaling end-of-stream. This is the
// supplemented --follow mode: it feeds the same Parser.Run loop, not a
// second parsing path.
type followReader struct {
	ctx     context.Context
	file    *os.File
	watcher *fsnotify.Watcher
}

// newFollowReader opens path and arranges to watch it for growth.
func newFollowReader(ctx context.Context, path string) (*followReader, error) {
	file, err := os.Open(path) // #nosec G304 -- path is the user-supplied CLI argument
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		_ = file.Close()
		return nil, err
	}
	return &followReader{ctx: ctx, file: file, watcher: watcher}, nil
}

func (f *followReader) Read(p []byte) (int, error) {
	for {
		n, err := f.file.Read(p)
		if !errors.Is(err, io.EOF) {
			return n, err
		}
		if n > 0 {
			return n, nil
		}
		select {
		case <-f.ctx.Done():
			return 0, io.EOF
		case evt, ok := <-f.watcher.Events:
			if !ok {
				return 0, io.EOF
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
		case watchErr, ok := <-f.watcher.Errors:
			if ok {
				mylog.Warn("parser: follow watcher error: %v", watchErr)
			}
			return 0, io.EOF
		}
	}
}

func (f *followReader) Close() error {
	_ = f.watcher.Close()
	return f.file.Close()
}

// RunFollow runs the parser against path, blocking for growth after EOF
// instead of terminating, until ctx is cancelled.
func (p *Parser) RunFollow(ctx context.Context, path string) error {
	reader, err := newFollowReader(ctx, path)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	p.Run(ctx, reader)
	return nil
}
