package core

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

type RuntimeContext struct {
	Env     string
	Logger  *slog.Logger
	Metrics *Metrics
}

// Route maps a path prefix to a card. Build receives the escaped path
// remainder after Prefix and the parsed query.
type Route struct {
	Prefix string
	Build  func(rest string, query url.Values) Card
}

var corsHeaders = [][2]string{
	{"Access-Control-Allow-Origin", "*"},
	{"Access-Control-Allow-Methods", "GET, OPTIONS"},
	{"Access-Control-Allow-Headers", "Content-Type"},
}

// CardRoutes is the fixed card route table, checked in order.
var CardRoutes = []Route{
	{Prefix: "/baby-name/", Build: buildBabyName},
	{Prefix: "/word/", Build: buildWordOfDay},
}

type Router struct {
	config   Config
	routes   []Route
	logger   *slog.Logger
	metrics  *Metrics
	minifier *Minifier
}

func NewRouter(config Config, rt RuntimeContext) *Router {
	r := &Router{
		config:  config,
		routes:  CardRoutes,
		logger:  rt.Logger,
		metrics: rt.Metrics,
	}
	if r.logger == nil {
		r.logger = discardLogger()
	}
	if config.Minify {
		r.minifier = NewMinifier()
	}
	return r
}

// Match resolves a request path and query to a card. The method is not
// consulted: every method other than OPTIONS renders. Repeated leading
// copies of the prefix are all stripped, so /word/word/1 routes like /word/1.
func (r *Router) Match(path string, query url.Values) (Card, error) {
	for _, route := range r.routes {
		rest, ok := strings.CutPrefix(path, route.Prefix)
		if !ok {
			continue
		}
		for {
			next, again := strings.CutPrefix(rest, route.Prefix)
			if !again {
				break
			}
			rest = next
		}
		return route.Build(rest, query), nil
	}
	return nil, ErrNotFound
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method == http.MethodOptions {
		SetCORSHeaders(w.Header())
		return
	}

	card, err := r.Match(req.URL.EscapedPath(), ParseQuery(req.URL.RawQuery))
	if err != nil {
		r.metrics.ObserveNotFound()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, "Not found")
		return
	}

	doc := r.Render(req.Context(), card)
	r.writeDocument(w, req, card.Kind(), doc)
}

// Render renders card and applies the configured post-processing.
func (r *Router) Render(ctx context.Context, card Card) Document {
	doc := card.Render()
	if r.minifier != nil {
		if minified, err := r.minifier.Minify(doc); err != nil {
			r.logger.WarnContext(ctx, "minify failed, serving unminified card",
				"template", card.Kind(), "error", err)
		} else {
			doc = minified
		}
	}
	r.metrics.ObserveRender(card.Kind(), len(doc.Body))
	r.logger.DebugContext(ctx, "card rendered",
		"template", card.Kind(), "bytes", len(doc.Body))
	return doc
}

func (r *Router) writeDocument(w http.ResponseWriter, req *http.Request, kind string, doc Document) {
	h := w.Header()
	h.Set("Content-Type", doc.ContentType)
	h.Set("Cache-Control", doc.CacheControl)
	SetCORSHeaders(h)

	etag := ETag(doc.Body)
	h.Set("ETag", etag)
	if r.config.DebugHeaders {
		h.Set("X-OGImage-Template", kind)
	}
	if r.config.Gzip {
		h.Add("Vary", "Accept-Encoding")
	}

	if NotModified(req, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	body := []byte(doc.Body)
	if r.config.Gzip && AcceptsGzip(req) {
		if gz, err := GzipBytes(body); err == nil {
			h.Set("Content-Encoding", "gzip")
			body = gz
		} else {
			r.logger.WarnContext(req.Context(), "gzip failed", "error", err)
		}
	}

	w.Write(body)
}

func (r *Router) Routes() []Route {
	return r.routes
}

func SetCORSHeaders(h http.Header) {
	for _, kv := range corsHeaders {
		h.Set(kv[0], kv[1])
	}
}

// lastValue returns the final occurrence of key, matching how repeated
// query parameters overwrite each other.
func lastValue(query url.Values, key string) string {
	values := query[key]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

func buildBabyName(slug string, query url.Values) Card {
	card := BabyName{
		Name:          lastValue(query, "name"),
		Pronunciation: lastValue(query, "pronunciation"),
		Meaning:       lastValue(query, "meaning"),
		Story:         lastValue(query, "story"),
		Gender:        lastValue(query, "gender"),
	}
	if card.Name == "" {
		card.Name = strings.ReplaceAll(slug, "-", " ")
	}
	return card
}

func buildWordOfDay(_ string, query url.Values) Card {
	return WordOfDay{
		Sanskrit:        lastValue(query, "sanskrit"),
		Transliteration: lastValue(query, "transliteration"),
		Meaning:         lastValue(query, "meaning"),
	}
}
