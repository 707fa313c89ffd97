package notice

import (
	"context"
	"errors"

	"github.com/govdao/dashboard/pkg/dao"
)

// Multi delivers every notice to all of its notifiers.
type Multi []dao.Notifier

func (m Multi) Notify(ctx context.Context, message string) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.Notify(ctx, message))
	}

	return errors.Join(errs...)
}

func (m Multi) NotifyWarning(ctx context.Context, errorMessage error) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.NotifyWarning(ctx, errorMessage))
	}

	return errors.Join(errs...)
}

func (m Multi) NotifyError(ctx context.Context, errorMessage error) error {
	var errs []error
	for _, n := range m {
		errs = append(errs, n.NotifyError(ctx, errorMessage))
	}

	return errors.Join(errs...)
}

// ErrorsOnly forwards errors and drops info and warning notices.
type ErrorsOnly struct {
	dao.Notifier
}

func (e ErrorsOnly) Notify(ctx context.Context, message string) error {
	return nil
}

func (e ErrorsOnly) NotifyWarning(ctx context.Context, errorMessage error) error {
	return nil
}
