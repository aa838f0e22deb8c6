package textanalyzer

// universal maps Penn Treebank tags to Universal Dependencies POS tags.
var universal = map[string]string{
	"CC": "CCONJ", "CD": "NUM", "DT": "DET", "EX": "PRON", "FW": "X",
	"IN": "ADP", "JJ": "ADJ", "JJR": "ADJ", "JJS": "ADJ", "LS": "X",
	"MD": "AUX", "NN": "NOUN", "NNS": "NOUN", "NNP": "PROPN", "NNPS": "PROPN",
	"PDT": "DET", "POS": "PART", "PRP": "PRON", "PRP$": "PRON",
	"RB": "ADV", "RBR": "ADV", "RBS": "ADV", "RP": "ADP",
	"SYM": "SYM", "TO": "PART", "UH": "INTJ",
	"VB": "VERB", "VBD": "VERB", "VBG": "VERB", "VBN": "VERB", "VBP": "VERB", "VBZ": "VERB",
	"WDT": "DET", "WP": "PRON", "WP$": "PRON", "WRB": "ADV",
	"$": "SYM", "#": "SYM",
	".": "PUNCT", ",": "PUNCT", ":": "PUNCT", "``": "PUNCT", "''": "PUNCT",
	"(": "PUNCT", ")": "PUNCT", "-LRB-": "PUNCT", "-RRB-": "PUNCT",
	"HYPH": "PUNCT", "NFP": "PUNCT", "AFX": "ADJ", "ADD": "X", "GW": "X", "XX": "X",
}

// UniversalTag returns the coarse universal POS tag (NOUN, VERB, ...) for a
// Penn Treebank tag. Unknown tags map to "X".
func UniversalTag(penn string) string {
	if u, ok := universal[penn]; ok {
		return u
	}
	return "X"
}
