// Package sentiment provides offline polarity, emotion, and subjectivity
// analysis. Two small logistic regression models are trained from
// hand-curated corpora at construction time; no network access needed.
package sentiment

import (
	"math"
	"strings"

	"dynamichat/internal/logging"
)

// Polarity labels.
const (
	PolarityPositive = "positive"
	PolarityNegative = "negative"
	PolarityNeutral  = "neutral"
)

// Emotion labels.
const (
	EmotionJoy      = "joy"
	EmotionAnger    = "anger"
	EmotionSadness  = "sadness"
	EmotionFear     = "fear"
	EmotionSurprise = "surprise"
	EmotionNeutral  = "neutral"
)

// Subjectivity labels.
const (
	Subjective = "subjective"
	Objective  = "objective"
)

// emojiMap assigns each emotion a representative glyph.
var emojiMap = map[string]string{
	EmotionJoy:      "😄",
	EmotionAnger:    "😠",
	EmotionSadness:  "😢",
	EmotionFear:     "😨",
	EmotionSurprise: "😲",
	EmotionNeutral:  "😐",
}

// subjectivityWords flag first-person emotive language. Any overlap with
// the lower-cased token set marks the text subjective.
var subjectivityWords = map[string]struct{}{
	"feel": {}, "love": {}, "hate": {}, "amazing": {}, "terrible": {},
	"happy": {}, "sad": {}, "great": {}, "awful": {}, "wonderful": {},
	"horrible": {}, "excited": {}, "angry": {}, "beautiful": {}, "ugly": {},
	"best": {}, "worst": {}, "enjoy": {}, "dislike": {},
}

// negativeEmotions are the emotions that imply negative polarity.
var negativeEmotions = map[string]struct{}{
	EmotionAnger: {}, EmotionFear: {}, EmotionSadness: {},
}

// Result is a full sentiment reading for one text.
type Result struct {
	Polarity     string  `json:"polarity"`
	PolarityConf float64 `json:"polarity_conf"`
	Emotion      string  `json:"emotion"`
	EmotionConf  float64 `json:"emotion_conf"`
	Subjectivity string  `json:"subjectivity"`
	Emoji        string  `json:"emoji"`
}

// defaultResult is returned for empty or whitespace-only input.
func defaultResult() Result {
	return Result{
		Polarity:     PolarityNeutral,
		PolarityConf: 0.5,
		Emotion:      EmotionNeutral,
		EmotionConf:  0.5,
		Subjectivity: Objective,
		Emoji:        emojiMap[EmotionNeutral],
	}
}

// Analyser is the single entry point for sentiment and emotion features.
// Construction trains both models; the result is immutable and safe for
// concurrent use.
type Analyser struct {
	polarity *classifier
	emotion  *classifier
}

// NewAnalyser trains the polarity and emotion models.
func NewAnalyser() *Analyser {
	timer := logging.StartTimer(logging.CategorySentiment, "NewAnalyser")
	defer timer.Stop()

	a := &Analyser{
		polarity: trainClassifier(polarityCorpus),
		emotion:  trainClassifier(emotionCorpus),
	}

	logging.SentimentDebug("Sentiment models trained: polarity classes=%d, emotion classes=%d",
		len(a.polarity.classes), len(a.emotion.classes))

	return a
}

// Analyse returns the full sentiment reading for the text. Empty or
// whitespace-only input yields the neutral default.
func (a *Analyser) Analyse(text string) Result {
	if strings.TrimSpace(text) == "" {
		return defaultResult()
	}

	polarity, polConf := a.polarity.predict(text)
	polConf = roundConf(polConf)

	emotion, emoConf := a.emotion.predict(text)
	emoConf = roundConf(emoConf)

	// Consistency fix: when the emotion is clearly negative but polarity
	// landed on neutral with low confidence, trust the emotion signal.
	if _, neg := negativeEmotions[emotion]; neg &&
		polarity == PolarityNeutral && polConf < 0.70 {
		polarity = PolarityNegative
		polConf = roundConf(math.Max(polConf, emoConf*0.85))
	}

	subjectivity := Objective
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if _, ok := subjectivityWords[tok]; ok {
			subjectivity = Subjective
			break
		}
	}

	return Result{
		Polarity:     polarity,
		PolarityConf: polConf,
		Emotion:      emotion,
		EmotionConf:  emoConf,
		Subjectivity: subjectivity,
		Emoji:        emojiMap[emotion],
	}
}

// AnalyseBatch analyses each text in order.
func (a *Analyser) AnalyseBatch(texts []string) []Result {
	results := make([]Result, len(texts))
	for i, text := range texts {
		results[i] = a.Analyse(text)
	}
	return results
}

func roundConf(f float64) float64 {
	return math.Round(f*1000) / 1000
}
