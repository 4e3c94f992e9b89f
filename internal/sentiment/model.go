package sentiment

import (
	"math"
	"sort"

	"dynamichat/internal/nlp"
)

// Training hyperparameters. Training is deterministic: weights start at
// zero and full-batch gradient descent visits examples in corpus order,
// so the same corpus always yields the same model.
const (
	learningRate = 0.5
	epochs       = 400
	l2Penalty    = 1e-3
)

// classifier is a multinomial logistic regression model over TF-IDF
// features. It is read-only after training and safe for concurrent use.
type classifier struct {
	vectorizer *nlp.Vectorizer
	classes    []string    // sorted, index aligns with weight rows
	weights    [][]float64 // classes x dims
	bias       []float64
}

// trainClassifier fits a softmax regression model on the labelled corpus.
// Features are unigram plus bigram TF-IDF over the corpus vocabulary.
func trainClassifier(corpus []labeledExample) *classifier {
	texts := make([]string, len(corpus))
	for i, ex := range corpus {
		texts[i] = ex.text
	}

	vectorizer := nlp.NewVectorizer(texts, nlp.WithNGrams(1, 2))
	dims := vectorizer.Dimensions()

	classSet := make(map[string]struct{})
	for _, ex := range corpus {
		classSet[ex.label] = struct{}{}
	}
	classes := make([]string, 0, len(classSet))
	for label := range classSet {
		classes = append(classes, label)
	}
	sort.Strings(classes)

	classIndex := make(map[string]int, len(classes))
	for i, label := range classes {
		classIndex[label] = i
	}

	features := make([][]float64, len(corpus))
	targets := make([]int, len(corpus))
	for i, ex := range corpus {
		features[i] = vectorizer.Transform(ex.text)
		targets[i] = classIndex[ex.label]
	}

	c := &classifier{
		vectorizer: vectorizer,
		classes:    classes,
		weights:    make([][]float64, len(classes)),
		bias:       make([]float64, len(classes)),
	}
	for k := range c.weights {
		c.weights[k] = make([]float64, dims)
	}

	n := float64(len(corpus))
	gradW := make([][]float64, len(classes))
	gradB := make([]float64, len(classes))
	for k := range gradW {
		gradW[k] = make([]float64, dims)
	}

	for epoch := 0; epoch < epochs; epoch++ {
		for k := range gradW {
			for j := range gradW[k] {
				gradW[k][j] = 0
			}
			gradB[k] = 0
		}

		for i, x := range features {
			probs := c.forward(x)
			for k := range c.classes {
				delta := probs[k]
				if k == targets[i] {
					delta -= 1
				}
				if delta == 0 {
					continue
				}
				row := gradW[k]
				for j, xj := range x {
					if xj != 0 {
						row[j] += delta * xj
					}
				}
				gradB[k] += delta
			}
		}

		for k := range c.classes {
			row, grad := c.weights[k], gradW[k]
			for j := range row {
				row[j] -= learningRate * (grad[j]/n + l2Penalty*row[j])
			}
			c.bias[k] -= learningRate * gradB[k] / n
		}
	}

	return c
}

// forward computes softmax class probabilities for a feature vector.
func (c *classifier) forward(x []float64) []float64 {
	scores := make([]float64, len(c.classes))
	maxScore := math.Inf(-1)
	for k := range c.classes {
		s := c.bias[k]
		row := c.weights[k]
		for j, xj := range x {
			if xj != 0 {
				s += row[j] * xj
			}
		}
		scores[k] = s
		if s > maxScore {
			maxScore = s
		}
	}

	var sum float64
	for k, s := range scores {
		scores[k] = math.Exp(s - maxScore)
		sum += scores[k]
	}
	for k := range scores {
		scores[k] /= sum
	}
	return scores
}

// predict returns the arg-max class and its probability. Ties resolve to
// the alphabetically first class.
func (c *classifier) predict(text string) (string, float64) {
	probs := c.forward(c.vectorizer.Transform(text))
	bestIdx := 0
	for k := 1; k < len(probs); k++ {
		if probs[k] > probs[bestIdx] {
			bestIdx = k
		}
	}
	return c.classes[bestIdx], probs[bestIdx]
}
