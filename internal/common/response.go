package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/govdao/dashboard/pkg/dao"
)

type ResponseType string

const (
	ResponseTypeObject ResponseType = "object"
	ResponseTypeArray  ResponseType = "array"
)

// Response is the default response object
type Response struct {
	ResponseType ResponseType `json:"response_type"`
	Object       any          `json:"object,omitempty"`
	Array        any          `json:"array,omitempty"`
	Meta         any          `json:"meta,omitempty"`
}

func Body(w http.ResponseWriter, body any, meta any) error {
	b, err := json.Marshal(&Response{
		ResponseType: ResponseTypeObject,
		Object:       body,
		Meta:         meta,
	})
	if err != nil {
		return err
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(b)

	return nil
}

func BodyMultiple(w http.ResponseWriter, body any, meta any) error {
	b, err := json.Marshal(&Response{
		ResponseType: ResponseTypeArray,
		Array:        body,
		Meta:         meta,
	})
	if err != nil {
		return err
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(b)

	return nil
}

// StreamHeaders prepares w for server-sent events.
func StreamHeaders(w http.ResponseWriter) (http.Flusher, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, errors.New("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	return flusher, nil
}

// StreamedEvent writes one server-sent event with a JSON payload. An id of 0 is omitted.
func StreamedEvent(w http.ResponseWriter, flusher http.Flusher, id int64, event string, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	if id > 0 {
		if _, err := fmt.Fprintf(w, "id: %d\n", id); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, b)
	if err != nil {
		return err
	}

	flusher.Flush()

	return nil
}

// StatusFor maps dashboard errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, dao.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, dao.ErrNotMember), errors.Is(err, dao.ErrNoSigner):
		return http.StatusForbidden
	case errors.Is(err, dao.ErrInvalidVote),
		errors.Is(err, dao.ErrInvalidProposal),
		errors.Is(err, dao.ErrInvalidTab):
		return http.StatusBadRequest
	case errors.Is(err, dao.ErrWrongNetwork):
		return http.StatusPreconditionFailed
	case errors.Is(err, dao.ErrNotConnected):
		return http.StatusPreconditionRequired
	default:
		return http.StatusBadGateway
	}
}

// Error writes err with the status StatusFor assigns to it.
func Error(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), StatusFor(err))
}

// IsForm reports whether the request was posted by an HTML form.
func IsForm(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}

// Done finishes a state-changing request. Form posts are sent back to the page,
// everything else receives the JSON envelope.
func Done(w http.ResponseWriter, r *http.Request, body any) {
	if IsForm(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if body == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := Body(w, body, nil); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// Fail finishes a failed request. Form posts are redirected so the page can show the notice.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	if IsForm(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	Error(w, err)
}
