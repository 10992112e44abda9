package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"HexTerrain/internal/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settleDelay is how long a burst of file events must be quiet before reloading
const settleDelay = 100 * time.Millisecond

var errEmptyFile = errors.New("config file is empty")

// loadChanged reads path after a change. An empty file is what editors leave
// between truncating and writing, so it is reported instead of parsed as defaults.
func loadChanged(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}
	if info.Size() == 0 {
		return nil, errEmptyFile
	}
	return Load(path)
}

// Watch reloads path once a burst of events settles and sends each valid config on
// the returned channel. Invalid and empty files are logged and skipped. The channel
// is closed when ctx is done.
//
// The parent directory is watched so editors that replace the file on save still
// trigger a reload.
func Watch(ctx context.Context, path string) (<-chan *Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan *Config, 1)
	go func() {
		defer close(out)
		defer watcher.Close()

		settle := time.NewTimer(settleDelay)
		settle.Stop()
		defer settle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filepath.Base(abs) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				settle.Reset(settleDelay)
			case <-settle.C:
				cfg, err := loadChanged(abs)
				if errors.Is(err, errEmptyFile) {
					logger.Log.Debug("Skipping empty config", zap.String("path", abs))
					continue
				}
				if err != nil {
					logger.Log.Warn("Ignoring config change", zap.String("path", abs), zap.Error(err))
					continue
				}
				logger.Log.Info("Config reloaded", zap.String("path", abs))
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Log.Warn("Config watcher error", zap.Error(err))
			}
		}
	}()
	return out, nil
}
