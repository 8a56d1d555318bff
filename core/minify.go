package core

import (
	"github.com/tdewolff/minify/v2"
	minsvg "github.com/tdewolff/minify/v2/svg"
)

type Minifier struct {
	m *minify.M
}

func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc(ContentTypeSVG, minsvg.Minify)
	return &Minifier{m: m}
}

// Minify compacts the document body. On failure the document is returned
// unchanged along with the error.
func (mn *Minifier) Minify(doc Document) (Document, error) {
	out, err := mn.m.String(doc.ContentType, doc.Body)
	if err != nil {
		return doc, err
	}
	doc.Body = out
	return doc, nil
}
