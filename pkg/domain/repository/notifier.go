package repository

import "context"

// Notifier 通知先
type Notifier interface {
	PostText(ctx context.Context, text string) error
}
