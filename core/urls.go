package core

import (
	"net/url"
	"strings"
)

type queryParam struct {
	key, value string
}

// BabyNamePath builds the request path that renders card under slug.
// Parameters keep the order the site pages emit them in.
func BabyNamePath(slug string, card BabyName) string {
	return "/baby-name/" + url.PathEscape(slug) + "?" + encodeOrdered(
		queryParam{"name", card.Name},
		queryParam{"pronunciation", card.Pronunciation},
		queryParam{"meaning", card.Meaning},
		queryParam{"story", card.Story},
		queryParam{"gender", card.Gender},
	)
}

func WordPath(id string, card WordOfDay) string {
	return "/word/" + url.PathEscape(id) + "?" + encodeOrdered(
		queryParam{"sanskrit", card.Sanskrit},
		queryParam{"transliteration", card.Transliteration},
		queryParam{"meaning", card.Meaning},
	)
}

func ImageURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}

func encodeOrdered(params ...queryParam) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
