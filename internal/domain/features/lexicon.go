package features

// Lexicon is the per-locale keyword material the extractor compiles its
// matchers from. Keeping these as data means adding a locale never touches
// the extraction or scoring logic.
type Lexicon struct {
	Locale string

	// Interrogatives flag question openers even when the transcript lost
	// its question mark.
	Interrogatives []string
	HowTo          []string
	Warning        []string
	Step           []string
	Story          []string
	CTANoise       []string
	Ordinals       []string

	// Fillers are matched per token, not by regex, so accented
	// single-word fillers behave the same as ASCII ones.
	Fillers []string
}

var English = Lexicon{
	Locale: "en",
	Interrogatives: []string{
		"what", "why", "how", "when", "where", "who", "which",
		"can you", "did you", "have you", "do you",
	},
	HowTo: []string{
		"how to", "here's how", "here is how", "let me show",
		"the way to", "step by step",
	},
	Warning: []string{
		"never", "avoid", "mistake", "careful", "warning", "danger",
		"wrong", "don't do", "stop doing",
	},
	Step: []string{
		"step", "first", "then", "next", "after that", "finally",
	},
	Story: []string{
		"one day", "once", "remember when", "story", "happened",
		"back then", "at the time",
	},
	CTANoise: []string{
		"subscribe", "like and", "smash that", "link in bio",
		"link in the description", "follow me", "check out my",
		"use my code", "sponsor",
	},
	Ordinals: []string{
		"first", "second", "third", "fourth", "fifth",
	},
	Fillers: []string{
		"um", "uh", "uhm", "erm", "hmm", "hm", "mmm", "ah", "eh",
		"y'know",
	},
}

var Portuguese = Lexicon{
	Locale: "pt",
	Interrogatives: []string{
		"o que", "por que", "como", "quando", "onde", "quem", "qual",
		"será que", "você sabe",
	},
	HowTo: []string{
		"como fazer", "vou mostrar", "vou te mostrar", "passo a passo",
		"o jeito de", "a forma de",
	},
	Warning: []string{
		"nunca", "evite", "erro", "cuidado", "perigo", "errado",
		"não faça", "pare de",
	},
	Step: []string{
		"passo", "primeiro", "depois", "em seguida", "por fim",
		"agora",
	},
	Story: []string{
		"um dia", "uma vez", "lembro", "aconteceu", "naquela época",
		"história",
	},
	CTANoise: []string{
		"se inscreve", "inscreva", "deixa o like", "link na bio",
		"link na descrição", "me segue", "segue o canal",
		"cupom", "patrocinador",
	},
	Ordinals: []string{
		"primeiro", "segundo", "terceiro", "quarto", "quinto",
	},
	Fillers: []string{
		"né", "tipo", "ahn", "hã", "ué", "enfim",
	},
}

// DefaultLexicons mirrors the locales the original keyword tables covered.
func DefaultLexicons() []Lexicon { return []Lexicon{English, Portuguese} }
