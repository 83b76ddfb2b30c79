package web

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	ds "github.com/starfederation/datastar-go/datastar"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/brush"
	"github.com/san-kum/brushchart/internal/chart"
	"github.com/san-kum/brushchart/internal/export"
	"github.com/san-kum/brushchart/internal/viz"
)

const childWidth, childHeight = 240, 60

type pointerSig struct {
	Pointer struct {
		X     float64 `json:"x"`
		Y     float64 `json:"y"`
		Phase string  `json:"phase"`
	} `json:"pointer"`
}

type sizeSig struct {
	Size struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	} `json:"size"`
}

type pageData struct {
	Theme    viz.Theme
	Height   float64
	Samples  int
	Frame    chart.Frame[app.ChildView]
	ChartSVG template.HTML
	ChildSVG template.HTML
}

// data renders the chart once. Callers hold mu.
func (s *Server) data() pageData {
	f := s.app.Render()
	return pageData{
		Theme:    s.theme,
		Height:   s.app.Config().Chart.Height,
		Samples:  len(f.Dots),
		Frame:    f,
		ChartSVG: template.HTML(export.ChartElement(f, s.theme)),
		ChildSVG: template.HTML(export.ChildToSVG(f.Child, childWidth, childHeight, string(s.theme.Highlight))),
	}
}

// IndexHandler is the main entrypoint for the UI
func (s *Server) IndexHandler(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	data := s.data()
	s.mu.Unlock()

	if err := s.templates.ExecuteTemplate(w, "index", data); err != nil {
		log.Printf("couldn't execute template for index %s", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (s *Server) AddSampleHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	v := s.app.AddSample()
	data := s.data()
	s.mu.Unlock()

	log.Printf("added sample %g (%d total)", v, data.Samples)
	s.patch(w, r, data)
}

func (s *Server) ResetHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.app.ResetSelection()
	data := s.data()
	s.mu.Unlock()

	s.patch(w, r, data)
}

// BrushHandler feeds one pointer event into the brush.
func (s *Server) BrushHandler(w http.ResponseWriter, r *http.Request) {
	var sig pointerSig
	if err := ds.ReadSignals(r, &sig); err != nil {
		log.Printf("error reading signals: %s", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	p := sig.Pointer

	s.mu.Lock()
	b := s.app.Chart().Brush()
	if p.Phase == "cancel" {
		b.Cancel()
	} else {
		phase, ok := brush.ParsePhase(p.Phase)
		if !ok {
			s.mu.Unlock()
			log.Printf("unknown brush phase %q", p.Phase)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch phase {
		case brush.PhaseStart:
			b.Press(p.X, p.Y)
		case brush.PhaseBrush:
			b.Drag(p.X)
		case brush.PhaseEnd:
			b.Release(p.X)
		}
	}
	data := s.data()
	s.mu.Unlock()

	s.patch(w, r, data)
}

func (s *Server) ResizeHandler(w http.ResponseWriter, r *http.Request) {
	var sig sizeSig
	if err := ds.ReadSignals(r, &sig); err != nil {
		log.Printf("error reading signals: %s", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if sig.Size.Width <= 0 || sig.Size.Height <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if s.app.Observer().Observe(sig.Size.Width, sig.Size.Height) {
		log.Printf("chart resized to %vx%v", sig.Size.Width, sig.Size.Height)
	}
	data := s.data()
	s.mu.Unlock()

	s.patch(w, r, data)
}

// UpdatesHandler holds an event stream open and patches the chart whenever
// the observed size changes, so every open page follows a resize reported by
// any of them.
func (s *Server) UpdatesHandler(w http.ResponseWriter, r *http.Request) {
	sizes, cancel := s.app.Observer().Subscribe()
	defer cancel()

	sse := ds.NewSSE(w, r)
	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case size, ok := <-sizes:
			if !ok {
				return
			}
			s.mu.Lock()
			data := s.data()
			s.mu.Unlock()

			buf, err := s.fragments(data)
			if err != nil {
				log.Printf("couldn't render update for %vx%v: %s", size.Width, size.Height, err)
				return
			}
			if err := sse.PatchElements(buf); err != nil {
				log.Printf("error patching elements: %s", err)
				return
			}
		}
	}
}

func (s *Server) fragments(data pageData) (string, error) {
	var buf strings.Builder
	for _, name := range []string{"chart", "child"} {
		if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
			return "", fmt.Errorf("%s template: %w", name, err)
		}
	}
	return buf.String(), nil
}

// patch morphs the chart and child elements by ID.
func (s *Server) patch(w http.ResponseWriter, r *http.Request, data pageData) {
	buf, err := s.fragments(data)
	if err != nil {
		log.Printf("couldn't execute %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	sse := ds.NewSSE(w, r)
	if err := sse.PatchElements(buf); err != nil {
		log.Printf("error patching elements: %s", err)
	}
}
