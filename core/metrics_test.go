package core

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsRendersAndMisses(t *testing.T) {
	m := NewMetrics()
	router := NewRouter(DefaultConfig(), RuntimeContext{Metrics: m})

	for _, target := range []string{"/word/1", "/word/2", "/baby-name/a", "/missing"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	}

	if got := testutil.ToFloat64(m.rendered.WithLabelValues(KindWordOfDay)); got != 2 {
		t.Errorf("expected 2 word renders, got %v", got)
	}
	if got := testutil.ToFloat64(m.rendered.WithLabelValues(KindBabyName)); got != 1 {
		t.Errorf("expected 1 baby-name render, got %v", got)
	}
	if got := testutil.ToFloat64(m.notFound); got != 1 {
		t.Errorf("expected 1 not found, got %v", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRender(KindWordOfDay, 10)
	m.ObserveNotFound()
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveRender(KindBabyName, 2048)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rec.Result().Body)
	if !strings.Contains(string(body), `ogimage_cards_rendered_total{template="baby-name"} 1`) {
		t.Errorf("expected render counter in exposition, got:\n%s", body)
	}
}
