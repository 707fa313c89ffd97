package notices

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/govdao/dashboard/internal/common"
	"github.com/govdao/dashboard/pkg/dao"
)

const keepAlive = 15 * time.Second

type Board interface {
	Recent() []dao.Notice
	Since(id int64) []dao.Notice
	Subscribe() (<-chan dao.Notice, func())
}

type Service struct {
	board Board
}

func NewService(board Board) *Service {
	return &Service{board: board}
}

// List returns recent notices, optionally only those after ?since=<id>
func (s *Service) List(w http.ResponseWriter, r *http.Request) {
	ns := s.board.Recent()

	if q := r.URL.Query().Get("since"); q != "" {
		since, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			http.Error(w, "invalid since", http.StatusBadRequest)
			return
		}

		ns = s.board.Since(since)
	}

	err := common.BodyMultiple(w, ns, nil)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// Stream pushes notices as server-sent events until the client goes away
func (s *Service) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, err := common.StreamHeaders(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ch, cancel := s.board.Subscribe()
	defer cancel()

	var sent int64

	// replay what the client missed since its last event
	if last := r.Header.Get("Last-Event-ID"); last != "" {
		if since, err := strconv.ParseInt(last, 10, 64); err == nil {
			for _, n := range s.board.Since(since) {
				if err := common.StreamedEvent(w, flusher, n.ID, "notice", n); err != nil {
					return
				}
				sent = n.ID
			}
		}
	}

	flusher.Flush()

	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := w.Write([]byte(": keep-alive\n\n")); err != nil {
				return
			}
			flusher.Flush()
		case n, ok := <-ch:
			if !ok {
				return
			}

			// already replayed
			if n.ID <= sent {
				continue
			}

			if err := common.StreamedEvent(w, flusher, n.ID, "notice", n); err != nil {
				log.Default().Println("notice stream:", err)
				return
			}
		}
	}
}
