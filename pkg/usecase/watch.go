package usecase

import (
	"context"
	"time"

	"mining-profit/pkg/domain"
)

// Watcher 一定間隔でレポートを作り直す
type Watcher struct {
	logger   domain.Logger
	interval time.Duration
	run      func(ctx context.Context) error
}

// NewWatcher 生成
func NewWatcher(l domain.Logger, interval time.Duration, run func(ctx context.Context) error) *Watcher {
	return &Watcher{
		logger:   l,
		interval: interval,
		run:      run,
	}
}

// Watch 監視
// ctx が終わるまで繰り返す。実行中の run は ctx の終了で中断しない。
func (w *Watcher) Watch(ctx context.Context) error {
	runCtx := context.WithoutCancel(ctx)
	w.runOnce(runCtx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.runOnce(runCtx)
		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context) {
	if err := w.run(ctx); err != nil {
		w.logger.Error("failed to update, error: %v", err)
	}
}
