package dao

import (
	"context"
	"time"
)

type NoticeLevel string

const (
	NoticeLevelInfo    NoticeLevel = "info"
	NoticeLevelWarning NoticeLevel = "warning"
	NoticeLevelError   NoticeLevel = "error"
)

// Notice is a user facing result of an operation.
type Notice struct {
	ID      int64       `json:"id"`
	Level   NoticeLevel `json:"level"`
	Action  string      `json:"action,omitempty"`
	Token   string      `json:"token,omitempty"`
	Message string      `json:"message"`
	Time    time.Time   `json:"time"`
}

type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyWarning(ctx context.Context, errorMessage error) error
	NotifyError(ctx context.Context, errorMessage error) error
}
