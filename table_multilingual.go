package smaz

import "sync"

// multilingualEntries trades English trigram coverage for single letters,
// bigrams and whole words shared across western European languages, plus
// accented letters as raw UTF-8 fragments. Order is the wire format.
// Four values appear twice ("to", "das", "dans", "\u00fc"); reverse lookup
// resolves each to its highest code, so the lower codes decode but are
// never produced by the encoder. "https://" is one byte past the match
// window and likewise decodes without ever being produced.
var multilingualEntries = []string{
	// high-frequency single letters
	" ", "e", "a", "o", "n", "i", "s", "r", "l", "t", "d", "c", "m", "u", "p",
	"b", "g", "v", "f", "y", "h", "j", "k", "w", "z", "x", "q",

	// frequent bigrams shared across languages
	"en", "es", "de", "la", "el", "ar", "on", "in", "or", "er", "an", "te",
	"ra", "al", "st", "nt", "to", "re", "ll", "co", "le", "se", "os", "as",
	"ta", "nd", "me", "lo", "ro", "po", "qu", "di", "ca", "si", "ti", "li",
	"do", "tr", "ma", "ch", "ue", "ci", "pr", "pa", "ri", "su", "mi", "mo",
	"un", "ha", "no", "ya",

	// Spanish
	"que", "con", "los", "las", "por", "una", "para", "del", "está", "pero",
	"más", "como", "bien", "todo", "esta", "cada", "sobre", "entre", "muy",
	"hay", "debe", "así", "poco", "algo", "solo", "ción", "mente", "dad", "ado",
	"ido", "ando",

	// English
	"the", "and", "ing", "of", "to", "is", "that", "for", "you", "not", "with",
	"this", "are", "have", "be", "they", "from", "at", "one", "all", "by",
	"was", "were", "what", "when", "how", "tion", "able", "ive", "ed", "ly",

	// French, Italian, Portuguese, German
	"et", "dans", "pour", "les", "des", "est", "che", "per", "non", "sono",
	"uma", "das", "der", "das", "und", "ist", "den", "ein", "qui", "par",
	"dans", "com", "ne", "au", "ça", "ce", "je", "tu", "il", "da", "na", "em",
	"vor", "nach", "bei", "zum",

	// accented letters
	"á", "é", "í", "ó", "ú", "ü", "ñ", "ç", "ã", "õ", "â", "ê", "î", "ô", "û",
	"à", "è", "ì", "ò", "ù", "ä", "ë", "ï", "ö", "ü", "ß",

	// punctuation and digits
	".", ",", ":", ";", "?", "!", "(", ")", "-", "/", "'", "\"", "\n", "\r",
	"\r\n", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "20", "30",
	"00",

	// web fragments and symbols (ends at the 253-entry cap)
	"http://", "https://", ".com", ".org", ".net", ".io", "www.", "@", "&", "%",
	"+", "=", "#", "*", "$", "€", "£", "<", ">", "[", "]",
}

var multilingual = sync.OnceValue(func() *Dictionary {
	return mustDictionary(multilingualEntries)
})

// Multilingual returns the built-in multilingual dictionary. Matching runs
// over raw bytes, so multi-byte fragments behave like any other entry. The
// returned Dictionary is shared and safe for concurrent use.
func Multilingual() *Dictionary {
	return multilingual()
}
