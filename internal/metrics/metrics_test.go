package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"lifegrid/pkg/torus"
)

func TestObserve(t *testing.T) {
	r := New()
	r.Observe("life3d", torus.Report{Generation: 1, AliveCount: 12, Changed: make([]torus.Coord, 3)}, time.Millisecond)
	r.Observe("life3d", torus.Report{Generation: 2, AliveCount: 12, Frozen: true}, time.Millisecond)
	r.Cue("life3d")

	if got := testutil.ToFloat64(r.generations.WithLabelValues("life3d")); got != 2 {
		t.Fatalf("expected 2 generations, got %v", got)
	}
	if got := testutil.ToFloat64(r.frozen.WithLabelValues("life3d")); got != 1 {
		t.Fatalf("expected 1 frozen generation, got %v", got)
	}
	if got := testutil.ToFloat64(r.alive.WithLabelValues("life3d")); got != 12 {
		t.Fatalf("expected 12 alive cells, got %v", got)
	}
	if got := testutil.ToFloat64(r.cues.WithLabelValues("life3d")); got != 1 {
		t.Fatalf("expected 1 cue, got %v", got)
	}
	if n := testutil.CollectAndCount(r.changed); n != 1 {
		t.Fatalf("expected one changed-cells series, got %d", n)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.Observe("life", torus.Report{}, 0)
	r.Cue("life")
}

func TestHandlerExposesSeries(t *testing.T) {
	r := New()
	r.Observe("life", torus.Report{AliveCount: 5}, time.Millisecond)

	rec := httptest.NewRecorder()
	promhttp.HandlerFor(r.Registry(), promhttp.HandlerOpts{}).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `lifegrid_alive_cells{sim="life"} 5`) {
		t.Fatalf("alive gauge missing from exposition:\n%s", body)
	}
}
