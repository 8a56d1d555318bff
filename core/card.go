package core

import (
	"strings"
	"text/template"
)

const (
	ContentTypeSVG = "image/svg+xml"

	CacheImmutable = "public, max-age=31536000, immutable"
	CacheHourly    = "public, max-age=3600"
)

const (
	KindBabyName  = "baby-name"
	KindWordOfDay = "word"
)

// Layout constants for the baby-name card.
const (
	babyMeaningWidth   = 60
	babyMeaningTop     = 360
	babyMeaningLeading = 35
	babyStoryWidth     = 80
	babyStoryGap       = 30
	babyStoryLeading   = 28
)

// Layout constants for the word-of-the-day card.
const (
	wordMeaningWidth   = 70
	wordMeaningTop     = 420
	wordMeaningLeading = 32
)

// Document is a rendered card together with the headers it is served with.
type Document struct {
	Body         string
	ContentType  string
	CacheControl string
}

type Card interface {
	Kind() string
	Render() Document
}

type BabyName struct {
	Name          string
	Pronunciation string
	Meaning       string
	Story         string
	Gender        string
}

type WordOfDay struct {
	Sanskrit        string
	Transliteration string
	Meaning         string
}

type textLine struct {
	Y    int
	Text Escaped
}

type babyNameView struct {
	Name          Escaped
	Pronunciation Escaped
	Meaning       []textLine
	Story         []textLine
}

type wordView struct {
	Sanskrit        Escaped
	Transliteration Escaped
	Meaning         []textLine
}

var (
	babyNameTemplate = template.Must(template.New(KindBabyName).Parse(babyNameLayout))
	wordTemplate     = template.Must(template.New(KindWordOfDay).Parse(wordLayout))
)

func (BabyName) Kind() string { return KindBabyName }

func (c BabyName) Render() Document {
	meaning := layoutLines(Wrap(c.Meaning, babyMeaningWidth), babyMeaningTop, babyMeaningLeading)

	// Gender is accepted from the query string but the layout has no slot for it.
	view := babyNameView{
		Name:          Escape(c.Name),
		Pronunciation: Escape(c.Pronunciation),
		Meaning:       meaning,
	}

	if c.Story != "" {
		view.Story = layoutLines(Wrap(c.Story, babyStoryWidth), StoryTop(len(meaning)), babyStoryLeading)
	}

	return Document{
		Body:         execute(babyNameTemplate, view),
		ContentType:  ContentTypeSVG,
		CacheControl: CacheImmutable,
	}
}

// StoryTop is the baseline of the first story line given how many lines
// the meaning block occupies.
func StoryTop(meaningLines int) int {
	return babyMeaningTop + meaningLines*babyMeaningLeading + babyStoryGap
}

func (WordOfDay) Kind() string { return KindWordOfDay }

func (c WordOfDay) Render() Document {
	view := wordView{
		Sanskrit:        Escape(c.Sanskrit),
		Transliteration: Escape(c.Transliteration),
		Meaning:         layoutLines(Wrap(c.Meaning, wordMeaningWidth), wordMeaningTop, wordMeaningLeading),
	}

	return Document{
		Body:         execute(wordTemplate, view),
		ContentType:  ContentTypeSVG,
		CacheControl: CacheHourly,
	}
}

func layoutLines(lines []string, top, leading int) []textLine {
	out := make([]textLine, len(lines))
	for i, line := range lines {
		out[i] = textLine{Y: top + i*leading, Text: Escape(line)}
	}
	return out
}

func execute(tmpl *template.Template, view any) string {
	var b strings.Builder
	// The views hold only strings and ints, so execution cannot fail.
	if err := tmpl.Execute(&b, view); err != nil {
		panic("ogimage: render " + tmpl.Name() + ": " + err.Error())
	}
	return b.String()
}
