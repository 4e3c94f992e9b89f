// Package nlp implements the offline NLP layer: intent recognition,
// named-entity extraction, and the TF-IDF machinery backing both.
// Pipelines are built once at session construction and are read-only
// afterwards, so they may be shared across sessions.
package nlp

import (
	"math"
	"regexp"
	"sort"

	"dynamichat/internal/logging"
)

// IntentGeneral is the reserved fallback label returned when neither the
// pattern catalogue nor the similarity model produces a confident match.
const IntentGeneral = "general"

// patternHitConfidence is the fixed confidence assigned to catalogue hits.
const patternHitConfidence = 0.95

// Prediction is a single intent candidate.
type Prediction struct {
	Label      string
	Confidence float64
}

// intentRule pairs an intent label with its detection patterns.
type intentRule struct {
	label    string
	patterns []*regexp.Regexp
}

// intentCatalogue is the ordered pattern catalogue. Order is a
// compatibility contract: the first rule with a hit is authoritative, so
// two overlapping patterns always resolve to the earlier entry.
var intentCatalogue = []intentRule{
	{"greeting", compileAll(
		`(?i)\b(hi|hello|hey|howdy|good\s*(morning|afternoon|evening)|what'?s\s*up|sup|yo)\b`,
	)},
	{"farewell", compileAll(
		`(?i)\b(bye|goodbye|see\s*you|later|take\s*care|have\s*a\s*(good|nice)\s*(day|night)|quit|exit)\b`,
	)},
	{"thanks", compileAll(
		`(?i)\b(thank(s|you|s?\s*a\s*lot|s?\s*so\s*much)|appreciate|grateful|cheers)\b`,
	)},
	{"help", compileAll(
		`(?i)\b(help|assist|support|what\s*can\s*you\s*do|how\s*do\s*i|usage|guide)\b`,
	)},
	{"weather", compileAll(
		`(?i)\b(weather|temperature|forecast|rain|sunny|cloudy|wind)\b`,
	)},
	{"time_date", compileAll(
		`(?i)\b(time|date|day|today|tomorrow|yesterday|clock|what\s*time)\b`,
	)},
	{"joke", compileAll(
		`(?i)\b(joke|funny|laugh|humor|amuse|entertain)\b`,
	)},
	{"sentiment_query", compileAll(
		`(?i)\b(how\s*(am\s*i|are\s*you|do\s*i\s*feel)|feel(ing)?|mood|emotion|sentiment)\b`,
	)},
	{"name_identity", compileAll(
		`(?i)\b(your\s*name|who\s*are\s*you|what\s*are\s*you|introduce\s*yourself|are\s*you\s*(ai|bot|robot))\b`,
	)},
	{"capability", compileAll(
		`(?i)\b(what\s*can|features|abilities|skills|trained|capable|do\s*you\s*support)\b`,
	)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// referenceCorpus holds one representative sentence per intent, used for
// similarity matching of paraphrases that miss every pattern. Order
// matches the catalogue.
var referenceCorpus = []struct {
	label string
	text  string
}{
	{"greeting", "hello hi hey good morning"},
	{"farewell", "bye goodbye see you later take care"},
	{"thanks", "thank you thanks a lot appreciate"},
	{"help", "help me how do I what can you do guide"},
	{"weather", "what is the weather forecast temperature"},
	{"time_date", "what time is it what is today's date"},
	{"joke", "tell me a joke make me laugh funny"},
	{"sentiment_query", "how are you feeling mood emotion"},
	{"name_identity", "what is your name who are you introduce yourself"},
	{"capability", "what features do you have what can you do abilities"},
}

// IntentClassifierConfig holds the similarity thresholds.
type IntentClassifierConfig struct {
	// MinSimilarity is the single-label acceptance threshold (default 0.12).
	MinSimilarity float64
	// MinMultiSimilarity is the multi-label acceptance threshold (default 0.05).
	MinMultiSimilarity float64
}

// DefaultIntentClassifierConfig returns the reference thresholds.
func DefaultIntentClassifierConfig() IntentClassifierConfig {
	return IntentClassifierConfig{
		MinSimilarity:      0.12,
		MinMultiSimilarity: 0.05,
	}
}

// IntentClassifier is the two-stage intent classifier.
//
// Stage 1 scans the ordered pattern catalogue; the first hit wins with
// fixed confidence. Stage 2 falls back to TF-IDF cosine similarity over
// the fixed reference corpus, catching paraphrases. The reference corpus,
// not user traffic, defines the vocabulary.
type IntentClassifier struct {
	vectorizer *Vectorizer
	corpusVecs [][]float64
	labels     []string
	cfg        IntentClassifierConfig
}

// NewIntentClassifier builds and fits the classifier. The returned value
// is immutable and safe for concurrent use.
func NewIntentClassifier(cfg IntentClassifierConfig) *IntentClassifier {
	timer := logging.StartTimer(logging.CategoryNLP, "NewIntentClassifier")
	defer timer.Stop()

	if cfg.MinSimilarity <= 0 {
		cfg.MinSimilarity = 0.12
	}
	if cfg.MinMultiSimilarity <= 0 {
		cfg.MinMultiSimilarity = 0.05
	}

	texts := make([]string, len(referenceCorpus))
	labels := make([]string, len(referenceCorpus))
	for i, entry := range referenceCorpus {
		texts[i] = entry.text
		labels[i] = entry.label
	}

	vectorizer := NewVectorizer(texts, WithStopWords())
	vecs := make([][]float64, len(texts))
	for i, text := range texts {
		vecs[i] = vectorizer.Transform(text)
	}

	logging.NLPDebug("Intent classifier fitted: %d reference intents, %d terms",
		len(labels), vectorizer.Dimensions())

	return &IntentClassifier{
		vectorizer: vectorizer,
		corpusVecs: vecs,
		labels:     labels,
		cfg:        cfg,
	}
}

// Predict returns the single best intent label and its confidence.
// Catalogue hits score a fixed confidence; similarity fallback reports
// the cosine similarity; everything else is ("general", 0.50).
func (c *IntentClassifier) Predict(text string) (string, float64) {
	// Stage 1 - pattern catalogue
	for _, rule := range intentCatalogue {
		for _, pat := range rule.patterns {
			if pat.MatchString(text) {
				return rule.label, patternHitConfidence
			}
		}
	}

	// Stage 2 - similarity fallback
	if idx, sim, ok := c.bestMatch(text); ok && sim > c.cfg.MinSimilarity {
		return c.labels[idx], round3(sim)
	}

	return IntentGeneral, 0.50
}

// PredictMulti returns up to topK intents sorted by descending
// confidence, deduplicated by label. Pattern hits are collected first;
// similarity candidates are consulted only when no pattern hit exists.
func (c *IntentClassifier) PredictMulti(text string, topK int) []Prediction {
	if topK <= 0 {
		topK = 3
	}

	var hits []Prediction
	for _, rule := range intentCatalogue {
		for _, pat := range rule.patterns {
			if pat.MatchString(text) {
				hits = append(hits, Prediction{rule.label, patternHitConfidence})
				break
			}
		}
	}

	if len(hits) == 0 {
		sims := c.similarities(text)
		ranked := make([]int, len(sims))
		for i := range ranked {
			ranked[i] = i
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return sims[ranked[i]] > sims[ranked[j]]
		})
		for _, idx := range ranked {
			if len(hits) >= topK {
				break
			}
			if sims[idx] > c.cfg.MinMultiSimilarity {
				hits = append(hits, Prediction{c.labels[idx], round3(sims[idx])})
			}
		}
	}

	if len(hits) == 0 {
		hits = append(hits, Prediction{IntentGeneral, 0.50})
	}

	// Deduplicate, keep highest confidence per label.
	best := make(map[string]float64, len(hits))
	order := make([]string, 0, len(hits))
	for _, h := range hits {
		if conf, ok := best[h.Label]; !ok {
			best[h.Label] = h.Confidence
			order = append(order, h.Label)
		} else if h.Confidence > conf {
			best[h.Label] = h.Confidence
		}
	}

	result := make([]Prediction, 0, len(order))
	for _, label := range order {
		result = append(result, Prediction{label, best[label]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Confidence > result[j].Confidence
	})
	if len(result) > topK {
		result = result[:topK]
	}
	return result
}

// bestMatch returns the arg-max reference intent for the input, or
// ok=false when the input shares no vocabulary with the corpus.
func (c *IntentClassifier) bestMatch(text string) (int, float64, bool) {
	sims := c.similarities(text)
	bestIdx, bestSim := -1, 0.0
	for i, sim := range sims {
		if sim > bestSim {
			bestIdx, bestSim = i, sim
		}
	}
	if bestIdx < 0 {
		return 0, 0, false
	}
	return bestIdx, bestSim, true
}

func (c *IntentClassifier) similarities(text string) []float64 {
	input := c.vectorizer.Transform(text)
	sims := make([]float64, len(c.corpusVecs))
	for i, vec := range c.corpusVecs {
		sims[i] = CosineSimilarity(input, vec)
	}
	return sims
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
