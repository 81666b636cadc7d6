// Package lexicon implements an offline, deterministic journal analyzer.
//
// Sentiment is scored from small word lists, topics are the most frequent
// content words across all three fields, and the summary is assembled from
// a fixed template. No network, no key, stable output for a given entry.
package lexicon

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"daybook/internal/services/journal/domain"
)

// Analyzer scores entries against built in word lists
type Analyzer struct {
	fold cases.Caser
}

// New returns a ready Analyzer
func New() *Analyzer {
	return &Analyzer{fold: cases.Fold()}
}

var positive = wordSet(
	"good", "great", "well", "done", "shipped", "finished", "fixed",
	"solved", "happy", "progress", "win", "won", "clean", "smooth",
	"productive", "learned", "closed", "resolved", "improved", "passed",
)

var negative = wordSet(
	"bad", "stuck", "blocked", "broken", "failed", "failing", "flaky",
	"slow", "frustrated", "tired", "hard", "bug", "bugs", "regression",
	"crash", "lost", "missed", "worse", "painful", "struggle", "struggled",
)

// stopwords are folded forms excluded from topic extraction
var stopwords = wordSet(
	"a", "an", "and", "are", "as", "at", "be", "but", "by", "for", "from",
	"had", "has", "have", "i", "in", "is", "it", "its", "my", "no", "not",
	"of", "on", "or", "our", "so", "that", "the", "then", "this", "to",
	"today", "tomorrow", "up", "was", "we", "were", "will", "with",
)

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Analyze implements domain.AnalyzerPort
func (a *Analyzer) Analyze(ctx context.Context, work, struggle, intention string) (domain.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return domain.Analysis{}, err
	}

	tokens := a.tokenize(work + " " + struggle + " " + intention)

	return domain.Analysis{
		Sentiment: a.sentiment(tokens),
		Topics:    a.topics(tokens),
		Summary:   a.summary(work, struggle, intention),
	}, nil
}

// tokenize splits on non letter runes and case folds every token
func (a *Analyzer) tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, a.fold.String(f))
	}
	return out
}

func (a *Analyzer) sentiment(tokens []string) domain.Sentiment {
	score := 0
	for _, t := range tokens {
		if _, ok := positive[t]; ok {
			score++
		}
		if _, ok := negative[t]; ok {
			score--
		}
	}
	switch {
	case score > 0:
		return domain.SentimentPositive
	case score < 0:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// topics picks the most frequent content words, frequency then first
// appearance as the tiebreak so output is stable
func (a *Analyzer) topics(tokens []string) []string {
	counts := map[string]int{}
	first := map[string]int{}
	for i, t := range tokens {
		if _, ok := stopwords[t]; ok {
			continue
		}
		if _, ok := positive[t]; ok {
			continue
		}
		if _, ok := negative[t]; ok {
			continue
		}
		if len(t) < 3 {
			continue
		}
		counts[t]++
		if _, seen := first[t]; !seen {
			first[t] = i
		}
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return first[words[i]] < first[words[j]]
	})

	if len(words) > domain.MaxTopics {
		words = words[:domain.MaxTopics]
	}
	// entries can be too terse to yield enough content words
	for _, fill := range []string{"journal", "reflection", "notes"} {
		if len(words) >= domain.MinTopics {
			break
		}
		if _, dup := counts[fill]; dup {
			continue
		}
		words = append(words, fill)
	}
	return words
}

func (a *Analyzer) summary(work, struggle, intention string) string {
	return fmt.Sprintf(
		"The day's work: %s. The struggle was %s, and tomorrow's intention is %s.",
		clause(work), clause(struggle), clause(intention),
	)
}

// clause trims whitespace and trailing sentence punctuation so the
// template reads as prose
func clause(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".!? \t\n")
}
