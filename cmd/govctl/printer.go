package main

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// printer writes notices as lines on a terminal.
type printer struct {
	mu  sync.Mutex
	out io.Writer
}

func (p *printer) Notify(ctx context.Context, message string) error {
	return p.println("", message)
}

func (p *printer) NotifyWarning(ctx context.Context, errorMessage error) error {
	return p.println("warning: ", errorMessage.Error())
}

func (p *printer) NotifyError(ctx context.Context, errorMessage error) error {
	return p.println("error: ", errorMessage.Error())
}

func (p *printer) println(prefix, message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, err := fmt.Fprintf(p.out, "%s%s\n", prefix, message)
	return err
}
