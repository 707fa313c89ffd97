package notices

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/govdao/dashboard/internal/notice"
	"github.com/govdao/dashboard/pkg/dao"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	b := notice.NewBoard(10)
	b.Notify(context.Background(), "one")
	b.Notify(context.Background(), "two")

	s := NewService(b)

	w := httptest.NewRecorder()
	s.List(w, httptest.NewRequest(http.MethodGet, "/api/notices", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Array []dao.Notice `json:"array"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Array, 2)

	w = httptest.NewRecorder()
	s.List(w, httptest.NewRequest(http.MethodGet, "/api/notices?since=1", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Array, 1)
	require.Equal(t, "two", resp.Array[0].Message)

	w = httptest.NewRecorder()
	s.List(w, httptest.NewRequest(http.MethodGet, "/api/notices?since=x", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// readEvent reads one event block and returns its id, event and data lines.
func readEvent(t *testing.T, r *bufio.Reader) map[string]string {
	fields := map[string]string{}
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)

		line = strings.TrimRight(line, "\n")
		if line == "" {
			if len(fields) > 0 {
				return fields
			}
			continue
		}

		k, v, _ := strings.Cut(line, ": ")
		fields[k] = v
	}
}

func TestStream(t *testing.T) {
	b := notice.NewBoard(10)
	b.Notify(context.Background(), "missed")

	srv := httptest.NewServer(http.HandlerFunc(NewService(b).Stream))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Last-Event-ID", "0")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	r := bufio.NewReader(resp.Body)

	ev := readEvent(t, r)
	require.Equal(t, "1", ev["id"])
	require.Equal(t, "notice", ev["event"])
	require.Contains(t, ev["data"], `"message":"missed"`)

	b.NotifyError(context.Background(), dao.NewActionError("vote:1", "tok", "Already voted", dao.ErrTxFailed))

	ev = readEvent(t, r)
	require.Equal(t, "2", ev["id"])

	var n dao.Notice
	require.NoError(t, json.Unmarshal([]byte(ev["data"]), &n))
	require.Equal(t, dao.NoticeLevelError, n.Level)
	require.Equal(t, "vote:1", n.Action)
	require.Equal(t, "Already voted", n.Message)
}
