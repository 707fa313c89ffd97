package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/govdao/dashboard/internal/dashboard"
	"github.com/govdao/dashboard/pkg/dao"
)

const recentNotices = 5

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var uiFS fs.FS

func init() {
	var err error
	uiFS, err = fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("failed to get static fs", err)
	}
}

type Controller interface {
	Render(now time.Time) dashboard.Page
}

type Board interface {
	Recent() []dao.Notice
}

type Service struct {
	ctrl  Controller
	board Board
	tmpl  *template.Template
	now   func() time.Time
}

func NewService(ctrl Controller, board Board) (*Service, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Service{ctrl: ctrl, board: board, tmpl: tmpl, now: time.Now}, nil
}

type data struct {
	Page    dashboard.Page
	Notices []dao.Notice
	APIKey  string
}

// Index renders the dashboard
func (s *Service) Index(w http.ResponseWriter, r *http.Request) {
	d := data{
		Page:    s.ctrl.Render(s.now()),
		Notices: latest(s.board.Recent(), recentNotices),
		APIKey:  r.URL.Query().Get("api_key"),
	}

	var buf bytes.Buffer
	err := s.tmpl.ExecuteTemplate(&buf, "dashboard.html", d)
	if err != nil {
		log.Default().Println("render dashboard:", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Static serves the embedded assets under /static/
func (s *Service) Static(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(filepath.Clean("/"+chi.URLParam(r, "*")), "/")

	file, err := uiFS.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			http.NotFound(w, r)
			return
		}
		log.Println("file", path, "cannot be read:", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil || stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if stat.Size() > 0 {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", stat.Size()))
	}

	io.Copy(w, file)
}

// latest returns up to n notices, newest first.
func latest(ns []dao.Notice, n int) []dao.Notice {
	out := []dao.Notice{}
	for i := len(ns) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, ns[i])
	}

	return out
}
