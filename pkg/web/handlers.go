package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/matzehuels/contribchart/pkg/buildinfo"
	"github.com/matzehuels/contribchart/pkg/export"
	"github.com/matzehuels/contribchart/pkg/theme"
	"github.com/matzehuels/contribchart/pkg/view"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	State      view.State
	Themes     []theme.Theme
	CanSubmit  bool
	ShowResult bool
	CanShare   bool
	Version    string
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctrl := s.sessions.lookup(w, r)
	state := ctrl.State()

	data := pageData{
		State:      state,
		Themes:     ctrl.Themes(),
		CanSubmit:  state.CanSubmit(),
		ShowResult: state.Data != nil && !state.Loading && !ctrl.Canvas().Blank(),
		CanShare:   s.sharer != nil,
		Version:    buildinfo.Version,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("Render page", "err", err)
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctrl := s.sessions.lookup(w, r)
	ctrl.SetUsername(r.PostFormValue("username"))
	if id := r.PostFormValue("theme"); id != "" && id != ctrl.State().Theme {
		_ = ctrl.ChangeTheme(r.Context(), id)
	}

	username, err := ctrl.Begin()
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	s.inflight.Add(1)
	go func(ctx context.Context) {
		defer s.inflight.Done()
		data, err := ctrl.Fetch(ctx, username)
		ctrl.Resolve(ctx, username, data, err)
	}(s.base)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	ctrl := s.sessions.lookup(w, r)
	if err := r.ParseForm(); err == nil && r.PostForm.Has("username") {
		ctrl.SetUsername(r.PostForm.Get("username"))
	}
	if err := ctrl.ChangeTheme(r.Context(), r.PostFormValue("theme")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	ctrl := s.sessions.lookup(w, r)
	if ctrl.Canvas().Blank() {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := ctrl.Download(w); err != nil {
		s.logger.Error("Encode chart", "err", err)
	}
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	ctrl := s.sessions.lookup(w, r)
	if ctrl.Canvas().Blank() {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	if err := ctrl.Download(w); err != nil {
		s.logger.Error("Encode chart", "err", err)
	}
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	ctrl := s.sessions.lookup(w, r)
	intent, err := ctrl.Share(r.Context(), s.sharer)
	if err != nil {
		s.logger.Warn("Share chart", "err", err)
	}
	if intent == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, intent, http.StatusSeeOther)
}
