package notice

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/govdao/dashboard/pkg/dao"
)

const subscriberBuffer = 16

// Board keeps the most recent notices in memory and fans new ones out to subscribers.
type Board struct {
	mu sync.Mutex

	size    int
	seq     int64
	notices []dao.Notice

	nextSub int
	subs    map[int]chan dao.Notice

	now func() time.Time
}

func NewBoard(size int) *Board {
	if size <= 0 {
		size = 1
	}

	return &Board{
		size: size,
		subs: map[int]chan dao.Notice{},
		now:  time.Now,
	}
}

// Publish stamps n with an ID and time, stores it and delivers it to subscribers.
// Slow subscribers miss notices rather than blocking the publisher.
func (b *Board) Publish(n dao.Notice) dao.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	n.ID = b.seq
	n.Time = b.now()

	b.notices = append(b.notices, n)
	if len(b.notices) > b.size {
		b.notices = b.notices[len(b.notices)-b.size:]
	}

	for _, ch := range b.subs {
		select {
		case ch <- n:
		default:
		}
	}

	return n
}

func (b *Board) Notify(ctx context.Context, message string) error {
	b.Publish(dao.Notice{Level: dao.NoticeLevelInfo, Message: message})
	return nil
}

func (b *Board) NotifyWarning(ctx context.Context, errorMessage error) error {
	b.Publish(fromError(dao.NoticeLevelWarning, errorMessage))
	return nil
}

func (b *Board) NotifyError(ctx context.Context, errorMessage error) error {
	b.Publish(fromError(dao.NoticeLevelError, errorMessage))
	return nil
}

// Recent returns the stored notices, oldest first.
func (b *Board) Recent() []dao.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]dao.Notice, len(b.notices))
	copy(out, b.notices)

	return out
}

// Since returns the stored notices with an ID greater than id.
func (b *Board) Since(id int64) []dao.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := []dao.Notice{}
	for _, n := range b.notices {
		if n.ID > id {
			out = append(out, n)
		}
	}

	return out
}

// Latest returns the newest notice, if any.
func (b *Board) Latest() (dao.Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.notices) == 0 {
		return dao.Notice{}, false
	}

	return b.notices[len(b.notices)-1], true
}

// Subscribe registers a listener. The returned func unregisters it and closes the channel.
func (b *Board) Subscribe() (<-chan dao.Notice, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextSub
	b.nextSub++

	ch := make(chan dao.Notice, subscriberBuffer)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			delete(b.subs, id)
			close(ch)
		})
	}
}

func fromError(level dao.NoticeLevel, err error) dao.Notice {
	n := dao.Notice{Level: level, Message: err.Error()}

	var aerr *dao.ActionError
	if errors.As(err, &aerr) {
		n.Action = aerr.Action
		n.Token = aerr.Token
		n.Message = aerr.Reason
	}

	return n
}
