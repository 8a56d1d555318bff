package core

import (
	"strings"
	"testing"
)

func TestMinifier_ShrinksCardAndKeepsText(t *testing.T) {
	doc := WordOfDay{Sanskrit: "धर्म", Transliteration: "dharma", Meaning: "duty & law"}.Render()

	out, err := NewMinifier().Minify(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Body) >= len(doc.Body) {
		t.Errorf("expected smaller body, got %d >= %d", len(out.Body), len(doc.Body))
	}
	if strings.Contains(out.Body, "<!--") {
		t.Error("expected comments to be stripped")
	}
	for _, want := range []string{"धर्म", "dharma", "sanskrit.roj.app"} {
		if !strings.Contains(out.Body, want) {
			t.Errorf("expected %q to survive minification", want)
		}
	}
	if out.ContentType != doc.ContentType || out.CacheControl != doc.CacheControl {
		t.Error("expected headers to be untouched")
	}
}

func TestMinifier_UnknownContentType(t *testing.T) {
	doc := Document{Body: "<svg/>", ContentType: "application/x-unknown"}

	out, err := NewMinifier().Minify(doc)
	if err == nil {
		t.Fatal("expected error for unregistered content type")
	}
	if out != doc {
		t.Error("expected document returned unchanged on error")
	}
}
