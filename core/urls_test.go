package core

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBabyNamePath(t *testing.T) {
	got := BabyNamePath("asha", BabyName{
		Name:          "Asha",
		Pronunciation: "AH-shah",
		Meaning:       "Hope & wish",
		Gender:        "female",
	})
	want := "/baby-name/asha?name=Asha&pronunciation=AH-shah&meaning=Hope+%26+wish&story=&gender=female"

	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestWordPath(t *testing.T) {
	got := WordPath("42", WordOfDay{Sanskrit: "धर्म", Transliteration: "dharma", Meaning: "duty"})
	want := "/word/42?sanskrit=%E0%A4%A7%E0%A4%B0%E0%A5%8D%E0%A4%AE&transliteration=dharma&meaning=duty"

	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestImageURL(t *testing.T) {
	if got := ImageURL("https://og.example.com/", "/word/1?x=y"); got != "https://og.example.com/word/1?x=y" {
		t.Errorf("unexpected url %q", got)
	}
}

func TestBuiltPathsRoundTripThroughRouter(t *testing.T) {
	router := NewRouter(DefaultConfig(), RuntimeContext{})

	baby := BabyName{Name: "Asha", Pronunciation: "AH-shah", Meaning: "Hope <3", Story: "Once & again", Gender: "f"}
	word := WordOfDay{Sanskrit: "सत्य", Transliteration: "satya", Meaning: "truth, 'real'"}

	cases := []struct {
		path string
		want Card
	}{
		{BabyNamePath("asha", baby), baby},
		{WordPath("7", word), word},
	}

	for _, c := range cases {
		u, err := url.Parse(c.path)
		if err != nil {
			t.Fatal(err)
		}
		got, err := router.Match(u.EscapedPath(), ParseQuery(u.RawQuery))
		if err != nil {
			t.Fatalf("%s: %v", c.path, err)
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%s round trip (-want +got):\n%s", c.path, diff)
		}
	}
}

func TestSamplesAllMatchARoute(t *testing.T) {
	router := NewRouter(DefaultConfig(), RuntimeContext{})

	for _, s := range Samples() {
		u, err := url.Parse(s.Path)
		if err != nil {
			t.Fatalf("%s: %v", s.Name, err)
		}
		if _, err := router.Match(u.EscapedPath(), ParseQuery(u.RawQuery)); err != nil {
			t.Errorf("%s: %v", s.Name, err)
		}
	}
}
