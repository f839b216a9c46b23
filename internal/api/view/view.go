package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"inkpost/internal/domain/model"

	"github.com/rs/zerolog/log"
)

// PageData carries everything a page template can show.
type PageData struct {
	Title       string
	CurrentUser string // empty when anonymous
	Flash       *Flash
	Posts       []model.Post
	Post        *model.Post
	Form        map[string]string // re-entered values after failed validation
	Query       string
}

const displayLayout = "15-04 02-01-2006"

var functions = template.FuncMap{
	// formatDT accepts time.Time or *time.Time so templates can pass the
	// edited pointer directly.
	"formatDT": func(v any) string {
		switch t := v.(type) {
		case time.Time:
			return t.Format(displayLayout)
		case *time.Time:
			if t != nil {
				return t.Format(displayLayout)
			}
		}
		return ""
	},
	"currentYear": func() int {
		return time.Now().UTC().Year()
	},
}

// View renders pages against the shared base layout. Templates are parsed
// once at construction.
type View struct {
	pages map[string]*template.Template
}

func New(dir string) (*View, error) {
	layout := filepath.Join(dir, "base.layout.html")

	pageFiles, err := filepath.Glob(filepath.Join(dir, "*.page.html"))
	if err != nil {
		return nil, fmt.Errorf("view.New: %w", err)
	}
	if len(pageFiles) == 0 {
		return nil, fmt.Errorf("view.New: no page templates in %s", dir)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, pageFile := range pageFiles {
		name := filepath.Base(pageFile)
		ts, err := template.New(name).Funcs(functions).ParseFiles(layout, pageFile)
		if err != nil {
			return nil, fmt.Errorf("view.New: parse %s: %w", name, err)
		}
		pages[name] = ts
	}
	return &View{pages: pages}, nil
}

// Render writes the named page. A flash passed in data wins; otherwise any
// pending flash cookie is popped. Render errors surface as a plain 500 so a
// half-written page is never sent.
func (v *View) Render(w http.ResponseWriter, r *http.Request, page string, data *PageData) {
	ts, ok := v.pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &PageData{}
	}
	if data.Flash == nil {
		data.Flash = PopFlash(w, r)
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		log.Error().Err(err).Str("page", page).Msg("template render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	buf.WriteTo(w)
}
