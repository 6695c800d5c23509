package lexicon

// English returns the en table.
func English() Table {
	return Table{
		Locale: "en",
		StopWords: set(
			"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and",
			"any", "are", "as", "at", "be", "because", "been", "before", "being", "below",
			"between", "both", "but", "by", "can", "could", "did", "do", "does", "doing", "down",
			"during", "each", "few", "for", "from", "further", "had", "has", "have", "having",
			"he", "her", "here", "hers", "herself", "him", "himself", "his", "how", "i", "if",
			"in", "into", "is", "it", "its", "itself", "just", "me", "more", "most", "my",
			"myself", "no", "nor", "not", "now", "of", "off", "on", "once", "only", "or",
			"other", "our", "ours", "ourselves", "out", "over", "own", "same", "she", "should",
			"so", "some", "such", "than", "that", "the", "their", "theirs", "them", "themselves",
			"then", "there", "these", "they", "this", "those", "through", "to", "too", "under",
			"until", "up", "very", "was", "we", "were", "what", "when", "where", "which",
			"while", "who", "whom", "why", "will", "with", "would", "you", "your", "yours",
			"yourself", "yourselves",
		),
		PowerWords: set(
			"best", "ultimate", "essential", "proven", "free", "exclusive", "complete",
			"easy", "simple", "quick", "fast", "new", "secret", "guaranteed", "powerful",
			"amazing", "instant", "expert", "definitive", "top", "effective", "step-by-step",
			"guide", "tips", "remarkable", "critical", "insider", "unique",
		),
		SentimentWords: set(
			"love", "hate", "fear", "happy", "sad", "shocking", "surprising", "incredible",
			"beautiful", "terrible", "awesome", "stunning", "brilliant", "worst", "painful",
			"delightful", "inspiring", "heartwarming", "alarming", "fantastic", "wonderful",
		),
		CTAVerbs: set(
			"discover", "learn", "find", "get", "try", "start", "buy", "shop", "order",
			"book", "download", "subscribe", "join", "contact", "call", "read", "explore",
			"request", "sign", "register", "see", "compare", "save", "claim",
		),
		TransitionWords: []string{
			"however", "therefore", "moreover", "furthermore", "additionally", "consequently",
			"meanwhile", "nevertheless", "otherwise", "similarly", "finally", "first",
			"second", "third", "next", "then", "also", "because", "although", "instead",
			"indeed", "thus", "hence", "for example", "for instance", "in addition",
			"as a result", "on the other hand", "in conclusion", "in fact", "in short",
			"to summarize", "above all", "after all", "in other words",
		},
		Interrogatives: set(
			"how", "what", "why", "when", "where", "which", "who", "whom", "whose", "can",
			"should", "is", "are", "do", "does", "will",
		),
		PassiveAuxiliaries: set("am", "is", "are", "was", "were", "be", "been", "being", "get", "got", "gets"),
		PassiveSuffixes:    []string{"ed", "en"},
		IrregularParticles: set(
			"built", "made", "done", "seen", "written", "taken", "given", "known", "shown",
			"found", "held", "kept", "left", "lost", "paid", "sent", "sold", "spent", "told",
			"bought", "brought", "caught", "taught", "thought", "won", "put", "set", "read",
			"cut", "hit", "hurt", "led", "met", "run", "drawn", "driven", "eaten", "grown",
			"thrown", "worn", "chosen", "spoken", "stolen", "broken", "forgotten",
		),
		GenericAnchors: set(
			"click here", "here", "read more", "more", "learn more", "this", "link",
			"this link", "click", "see more", "go", "continue",
		),
		RedundantAltPrefix: []string{"image of", "picture of", "photo of", "graphic of", "image", "photo"},
		UtilitySlugs: set(
			"home", "index", "contact", "about", "about-us", "search", "cart", "checkout",
			"account", "login", "register", "404", "thank-you", "thanks", "sitemap",
			"privacy", "privacy-policy", "terms", "terms-of-service", "cookies", "legal",
		),
		LegalSlugs: set(
			"privacy", "privacy-policy", "terms", "terms-of-service", "terms-and-conditions",
			"cookies", "cookie-policy", "legal", "legal-notice", "disclaimer", "imprint",
		),
		FormSlugs: set("contact", "contact-us", "quote", "request-a-quote", "get-a-quote", "apply", "booking"),
		Placeholders: []string{
			"lorem ipsum", "dolor sit amet", "todo", "tbd", "fixme", "placeholder",
			"insert text here", "your text here", "xxx",
		},
		Abbreviations: []string{"e.g.", "i.e.", "etc.", "mr.", "mrs.", "ms.", "dr.", "vs.", "st.", "no.", "approx."},
		Vowels:        "aeiouy",
		SilentEndings: []string{"e", "es"},
		StemSuffixes: []string{
			"ational", "ization", "fulness", "ousness", "iveness", "ments", "ment", "ness",
			"ation", "ities", "ity", "able", "ible", "ful", "less", "ous", "ive", "ize",
			"ise", "ing", "edly", "ies", "ied", "ed", "ly", "er",
		},
		Readability: Readability{Base: 206.835, SentenceWeight: 1.015, SyllableWeight: 84.6},
	}
}
