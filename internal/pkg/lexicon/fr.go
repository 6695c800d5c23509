package lexicon

// French returns the fr table. Words are stored without diacritics so they
// compare against normalized text.
func French() Table {
	return Table{
		Locale: "fr",
		StopWords: set(
			"a", "au", "aux", "avec", "ce", "ces", "cet", "cette", "dans", "de", "des", "du",
			"elle", "elles", "en", "est", "et", "etre", "eux", "il", "ils", "je", "la", "le",
			"les", "leur", "leurs", "lui", "ma", "mais", "me", "meme", "mes", "moi", "mon",
			"ne", "nos", "notre", "nous", "on", "ou", "par", "pas", "pour", "qu", "que", "qui",
			"sa", "se", "ses", "son", "sont", "sur", "ta", "te", "tes", "toi", "ton", "tu",
			"un", "une", "vos", "votre", "vous", "y", "ete", "etait", "etaient", "sera",
			"seront", "avoir", "ont", "avait", "plus", "tout", "tous", "toute", "toutes",
			"comme", "aussi", "tres", "sans", "sous", "entre", "vers", "chez", "donc", "car",
			"ni", "si", "ainsi", "alors", "dont", "cela", "ceci", "ca", "ici", "la",
		),
		PowerWords: set(
			"meilleur", "meilleure", "meilleurs", "ultime", "essentiel", "essentielle",
			"gratuit", "gratuite", "exclusif", "exclusive", "complet", "complete", "facile",
			"simple", "rapide", "nouveau", "nouvelle", "secret", "garanti", "garantie",
			"puissant", "incroyable", "instantane", "expert", "definitif", "efficace",
			"guide", "astuces", "conseils", "unique",
		),
		SentimentWords: set(
			"aimer", "adore", "peur", "heureux", "heureuse", "triste", "choquant",
			"surprenant", "incroyable", "magnifique", "terrible", "genial", "sublime",
			"brillant", "pire", "douloureux", "inspirant", "emouvant", "fantastique",
			"merveilleux", "merveilleuse", "passionnant",
		),
		CTAVerbs: set(
			"decouvrez", "decouvrir", "apprenez", "trouvez", "essayez", "commencez",
			"achetez", "commandez", "reservez", "telechargez", "abonnez", "inscrivez",
			"contactez", "appelez", "lisez", "explorez", "demandez", "comparez",
			"profitez", "obtenez", "rejoignez", "testez",
		),
		TransitionWords: []string{
			"cependant", "pourtant", "toutefois", "neanmoins", "donc", "ainsi", "ensuite",
			"puis", "enfin", "d abord", "premierement", "deuxiemement", "egalement",
			"de plus", "en outre", "par exemple", "en effet", "en revanche", "par consequent",
			"c est pourquoi", "en conclusion", "en resume", "autrement dit", "d ailleurs",
			"finalement", "parce que", "bien que", "alors que", "car",
		},
		Interrogatives: set(
			"comment", "pourquoi", "quand", "ou", "quel", "quelle", "quels", "quelles",
			"qui", "que", "quoi", "combien", "est-ce",
		),
		PassiveAuxiliaries: set(
			"est", "sont", "etait", "etaient", "ete", "etre", "sera", "seront", "fut",
			"furent", "soit", "soient", "serait", "seraient",
		),
		PassiveSuffixes:    []string{"e", "es", "ee", "ees", "i", "is", "ie", "ies", "u", "us", "ue", "ues", "t", "te"},
		IrregularParticles: set("fait", "faite", "faits", "faites", "pris", "prise", "mis", "mise", "dit", "dite", "ecrit", "ecrite"),
		GenericAnchors: set(
			"cliquez ici", "ici", "en savoir plus", "lire la suite", "plus", "voir plus",
			"ce lien", "lien", "cliquez", "suite",
		),
		RedundantAltPrefix: []string{"image de", "photo de", "illustration de", "image", "photo"},
		UtilitySlugs: set(
			"home", "accueil", "index", "contact", "contactez-nous", "a-propos", "recherche",
			"panier", "commande", "compte", "connexion", "inscription", "404", "merci",
			"plan-du-site", "mentions-legales", "politique-de-confidentialite", "cgv", "cgu",
			"cookies",
		),
		LegalSlugs: set(
			"mentions-legales", "politique-de-confidentialite", "confidentialite", "cgv",
			"cgu", "conditions-generales", "conditions-generales-de-vente", "cookies",
			"politique-cookies",
		),
		FormSlugs: set("contact", "contactez-nous", "devis", "demande-de-devis", "rendez-vous", "reservation"),
		Placeholders: []string{
			"lorem ipsum", "dolor sit amet", "todo", "a completer", "a faire", "fixme",
			"texte a venir", "votre texte ici", "xxx",
		},
		Abbreviations: []string{"p. ex.", "ex.", "etc.", "m.", "mme.", "mlle.", "dr.", "env.", "cf.", "p."},
		Vowels:        "aeiouy",
		SilentEndings: []string{"e", "es", "ent"},
		StemSuffixes: []string{
			"issements", "issement", "atrices", "ateurs", "ations", "ements", "atrice",
			"ateur", "ation", "ement", "ments", "ment", "ites", "ite", "euses", "euse",
			"eux", "ives", "ive", "ifs", "if", "ables", "able", "istes", "iste", "ismes",
			"isme", "antes", "ante", "ants", "ant", "ees", "ee", "es", "er", "ez", "e", "x",
		},
		Readability: Readability{Base: 207, SentenceWeight: 1.015, SyllableWeight: 73.6},
	}
}
