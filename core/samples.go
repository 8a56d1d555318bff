package core

type Sample struct {
	Name string
	Path string
}

func Samples() []Sample {
	return []Sample{
		{
			Name: "baby-name",
			Path: BabyNamePath("asha", BabyName{
				Name:          "Asha",
				Pronunciation: "AH-shah",
				Meaning:       "Hope, wish, desire; the expectation that something good will come",
				Story:         "In the Rigveda, asha names the longing that carries a seeker forward. Parents choose it for a child they hope will meet every dawn with courage.",
				Gender:        "female",
			}),
		},
		{
			Name: "baby-name-from-slug",
			Path: "/baby-name/priya-rose",
		},
		{
			Name: "word",
			Path: WordPath("1", WordOfDay{
				Sanskrit:        "धर्म",
				Transliteration: "dharma",
				Meaning:         "duty, righteousness",
			}),
		},
		{
			Name: "escaping",
			Path: WordPath("2", WordOfDay{
				Sanskrit:        "<सत्य>",
				Transliteration: `"satya" & 'rta'`,
				Meaning:         "truth <script>alert(1)</script>",
			}),
		},
	}
}
