package nlp

// Lookup tables are built once at package init and only read afterwards, so they
// are safe to share between concurrent requests.

var stopwords = newWordSet(
	"yang", "dan", "di", "ke", "dari", "ini", "itu", "dengan", "untuk", "pada",
	"adalah", "sebagai", "dalam", "tidak", "akan", "juga", "atau", "ada", "mereka",
	"telah", "sudah", "bisa", "dapat", "tersebut", "oleh", "setelah", "saat", "kami",
	"kita", "karena", "sehingga", "hanya", "namun", "tetapi", "bahwa", "seperti",
	"bagi", "hingga", "secara", "serta", "melalui", "antara", "waktu", "tahun",
)

// Multi-word entries ("luar biasa", "tidak aman", ...) are kept for parity with the
// published lexicon but can never equal a single token.
var positiveWords = newWordSet(
	"bagus", "baik", "senang", "gembira", "sukses", "berhasil", "hebat", "luar biasa",
	"indah", "cantik", "sempurna", "positif", "aman", "nyaman", "puas", "tertib",
	"transparan", "profesional", "bersih", "rapi", "aktif", "maju", "berkembang",
	"meningkat", "efektif", "efisien", "optimal", "terbaik", "unggul", "prima",
)

var negativeWords = newWordSet(
	"buruk", "jelek", "sedih", "gagal", "rusak", "kotor", "berbahaya", "negatif",
	"tidak aman", "masalah", "keluhan", "kerusakan", "pencurian", "vandalisme",
	"banjir", "kebakaran", "menurun", "kurang", "lambat", "terlambat", "mahal",
	"sulit", "rumit", "kacau", "berantakan", "tidak tertib", "macet", "padam",
)

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	set := make(wordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (s wordSet) has(word string) bool {
	_, ok := s[word]
	return ok
}

// IsStopword reports whether word is in the Indonesian stopword list.
func IsStopword(word string) bool {
	return stopwords.has(word)
}
