package nlp

import (
	"math"
	"regexp"
	"strings"
)

// tokenPattern matches word tokens of two or more characters,
// mirroring the behaviour of the reference vectoriser.
var tokenPattern = regexp.MustCompile(`[A-Za-z0-9_]{2,}`)

// englishStopWords is the stop-word set applied when the vectoriser is
// built with WithStopWords. Terms are compared lower-cased.
var englishStopWords = map[string]struct{}{
	"about": {}, "above": {}, "after": {}, "again": {}, "all": {}, "am": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "before": {}, "being": {}, "below": {},
	"between": {}, "both": {}, "but": {}, "by": {}, "can": {}, "did": {},
	"do": {}, "does": {}, "doing": {}, "down": {}, "during": {}, "each": {},
	"few": {}, "for": {}, "from": {}, "further": {}, "had": {}, "has": {},
	"have": {}, "having": {}, "he": {}, "her": {}, "here": {}, "hers": {},
	"him": {}, "his": {}, "how": {}, "if": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "its": {}, "itself": {}, "just": {}, "me": {}, "more": {},
	"most": {}, "my": {}, "myself": {}, "no": {}, "nor": {}, "not": {},
	"now": {}, "of": {}, "off": {}, "on": {}, "once": {}, "only": {},
	"or": {}, "other": {}, "our": {}, "ours": {}, "out": {}, "over": {},
	"own": {}, "same": {}, "she": {}, "should": {}, "so": {}, "some": {},
	"such": {}, "than": {}, "that": {}, "the": {}, "their": {}, "theirs": {},
	"them": {}, "then": {}, "there": {}, "these": {}, "they": {}, "this": {},
	"those": {}, "through": {}, "to": {}, "too": {}, "under": {}, "until": {},
	"up": {}, "very": {}, "was": {}, "we": {}, "were": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "while": {}, "who": {}, "whom": {},
	"why": {}, "will": {}, "with": {}, "you": {}, "your": {}, "yours": {},
	"yourself": {},
}

// Vectorizer converts text into weighted term vectors. The vocabulary and
// document frequencies are fixed at Fit time; unseen terms are ignored at
// transform time. Instances are read-only after Fit and safe for
// concurrent use.
type Vectorizer struct {
	minN, maxN int
	stopWords  bool

	vocab []string       // index -> term
	index map[string]int // term -> index
	idf   []float64
}

// VectorizerOption configures a Vectorizer.
type VectorizerOption func(*Vectorizer)

// WithStopWords enables english stop-word removal.
func WithStopWords() VectorizerOption {
	return func(v *Vectorizer) { v.stopWords = true }
}

// WithNGrams sets the n-gram range (inclusive). Default is unigrams only.
func WithNGrams(minN, maxN int) VectorizerOption {
	return func(v *Vectorizer) {
		v.minN = minN
		v.maxN = maxN
	}
}

// NewVectorizer builds a vectorizer and fits it on the given documents.
// The documents define the vocabulary and inverse document frequencies.
func NewVectorizer(docs []string, opts ...VectorizerOption) *Vectorizer {
	v := &Vectorizer{minN: 1, maxN: 1, index: make(map[string]int)}
	for _, opt := range opts {
		opt(v)
	}

	// Document frequency per term, vocabulary in first-seen order.
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range v.analyze(doc) {
			if _, ok := v.index[term]; !ok {
				v.index[term] = len(v.vocab)
				v.vocab = append(v.vocab, term)
			}
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				df[term]++
			}
		}
	}

	// Smoothed IDF: ln((1+n)/(1+df)) + 1.
	n := float64(len(docs))
	v.idf = make([]float64, len(v.vocab))
	for term, idx := range v.index {
		v.idf[idx] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	return v
}

// analyze tokenizes text into (possibly n-gram) terms.
func (v *Vectorizer) analyze(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0:0]
	for _, tok := range raw {
		if v.stopWords {
			if _, skip := englishStopWords[tok]; skip {
				continue
			}
		}
		tokens = append(tokens, tok)
	}

	if v.minN == 1 && v.maxN == 1 {
		return tokens
	}

	var terms []string
	for n := v.minN; n <= v.maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

// Dimensions returns the vocabulary size.
func (v *Vectorizer) Dimensions() int {
	return len(v.vocab)
}

// Transform converts text into an l2-normalized TF-IDF vector over the
// fitted vocabulary. Text with no known terms yields the zero vector;
// that is a normal outcome, not an error.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.vocab))
	for _, term := range v.analyze(text) {
		if idx, ok := v.index[term]; ok {
			vec[idx] += v.idf[idx]
		}
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// CosineSimilarity computes the cosine similarity of two equal-length
// vectors. Zero vectors have zero similarity to everything.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
