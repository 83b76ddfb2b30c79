package web

import (
	"bufio"
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/chart"
	"github.com/san-kum/brushchart/internal/config"
	"github.com/san-kum/brushchart/internal/viz"
)

func newServer(t *testing.T) (*Server, *app.App) {
	t.Helper()
	a := app.NewWithSamples(config.DefaultConfig(), []float64{10, 20, 30, 40, 50})
	a.Observer().Observe(400, 100)
	s, err := NewServer(a, viz.ThemeClassic)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return s, a
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	s, _ := newServer(t)
	rec := do(t, s, http.MethodGet, "/", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if got := strings.Count(body, `class="myDot"`); got != 5 {
		t.Errorf("expected 5 dots, got %d", got)
	}
	for _, want := range []string{`id="chart"`, `id="child"`, `id="chart-container"`, "/static/brush.js"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %s", want)
		}
	}
}

func TestAddSample(t *testing.T) {
	s, a := newServer(t)
	rec := do(t, s, http.MethodPost, "/add-sample", "{}")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if a.Len() != 6 {
		t.Errorf("expected 6 samples, got %d", a.Len())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "datastar-patch-elements") {
		t.Error("expected a datastar element patch")
	}
	if got := strings.Count(body, `class="myDot"`); got != 6 {
		t.Errorf("expected 6 dots in the patch, got %d", got)
	}
	if !strings.Contains(body, `data-samples="6"`) {
		t.Error("expected patched chart to report 6 samples")
	}
}

func TestBrushGesture(t *testing.T) {
	s, a := newServer(t)
	do(t, s, http.MethodGet, "/", "")

	for _, body := range []string{
		`{"pointer":{"x":200,"y":50,"phase":"start"}}`,
		`{"pointer":{"x":260,"y":50,"phase":"brush"}}`,
		`{"pointer":{"x":300,"y":50,"phase":"end"}}`,
	} {
		if rec := do(t, s, http.MethodPost, "/brush", body); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", body, rec.Code)
		}
	}

	sel := a.Chart().Selection()
	if math.Abs(sel.Low-2) > 1e-9 || math.Abs(sel.High-3) > 1e-9 {
		t.Errorf("expected selection [2 3], got %+v", sel)
	}
}

func TestBrushCancel(t *testing.T) {
	s, a := newServer(t)
	do(t, s, http.MethodGet, "/", "")

	do(t, s, http.MethodPost, "/brush", `{"pointer":{"x":200,"y":50,"phase":"start"}}`)
	do(t, s, http.MethodPost, "/brush", `{"pointer":{"phase":"cancel"}}`)

	if got := a.Chart().Selection(); got != (chart.Selection{Low: 0, High: 1.5}) {
		t.Errorf("expected selection untouched, got %+v", got)
	}
	// the redraw after cancel puts the brush back over the selection
	if b := a.Chart().Brush().Selection(); b == nil || *b != [2]float64{0, 150} {
		t.Errorf("expected brush at [0 150], got %v", b)
	}
}

func TestBrushBadRequests(t *testing.T) {
	s, _ := newServer(t)

	if rec := do(t, s, http.MethodPost, "/brush", `{"pointer":{"phase":"wiggle"}}`); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown phase, got %d", rec.Code)
	}
	if rec := do(t, s, http.MethodPost, "/brush", `not json`); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unreadable signals, got %d", rec.Code)
	}
}

func TestResize(t *testing.T) {
	s, a := newServer(t)

	rec := do(t, s, http.MethodPost, "/resize", `{"size":{"width":800,"height":150}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	d := a.Observer().Dimensions()
	if d == nil || d.Width != 800 || d.Height != 150 {
		t.Errorf("expected 800x150, got %+v", d)
	}
	if !strings.Contains(rec.Body.String(), `width="800" height="150"`) {
		t.Error("expected patched svg at the new size")
	}

	if rec := do(t, s, http.MethodPost, "/resize", `{"size":{"width":0,"height":150}}`); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty size, got %d", rec.Code)
	}
}

func TestReset(t *testing.T) {
	s, a := newServer(t)
	a.Chart().SetSelection(chart.Selection{Low: 2, High: 4})

	if rec := do(t, s, http.MethodPost, "/reset", "{}"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := a.Chart().Selection(); got != (chart.Selection{Low: 0, High: 1.5}) {
		t.Errorf("expected reset selection, got %+v", got)
	}
}

func TestStaticAndMethods(t *testing.T) {
	s, _ := newServer(t)

	if rec := do(t, s, http.MethodGet, "/static/brush.js", ""); rec.Code != http.StatusOK {
		t.Errorf("expected 200 for static asset, got %d", rec.Code)
	}
	if rec := do(t, s, http.MethodGet, "/add-sample", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
	if rec := do(t, s, http.MethodGet, "/missing", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	s, _ := newServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestUpdatesFollowResize(t *testing.T) {
	s, _ := newServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/updates", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	defer resp.Body.Close()

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(resp.Body)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	post, err := http.Post(ts.URL+"/resize", "application/json", strings.NewReader(`{"size":{"width":800,"height":150}}`))
	if err != nil {
		t.Fatalf("resize: %v", err)
	}
	post.Body.Close()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				t.Fatal("stream closed before the resize arrived")
			}
			if strings.Contains(line, `width="800" height="150"`) {
				return
			}
		case <-deadline:
			t.Fatal("no patch for the resize")
		}
	}
}
