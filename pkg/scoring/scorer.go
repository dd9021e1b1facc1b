package scoring

import (
	"regexp"
	"strings"

	"github.com/dkhrunov/newsdigest/pkg/category"
)

// wordRe extracts candidate tokens, words of three or more letters
var wordRe = regexp.MustCompile(`[a-zA-Z]{3,}`)

// stopwords excluded from article tokens before matching
var stopwords = map[string]struct{}{
	"the": {}, "is": {}, "at": {}, "which": {}, "on": {}, "a": {}, "an": {},
	"and": {}, "or": {}, "for": {}, "to": {}, "of": {}, "in": {}, "with": {},
	"by": {}, "as": {}, "from": {}, "that": {}, "this": {}, "it": {}, "are": {},
	"be": {}, "was": {}, "were": {}, "has": {}, "had": {}, "have": {}, "but": {},
	"not": {}, "if": {}, "then": {}, "so": {}, "do": {}, "does": {}, "did": {},
	"can": {}, "will": {}, "just": {}, "about": {}, "into": {}, "over": {},
	"after": {}, "before": {}, "more": {}, "less": {}, "than": {}, "up": {},
	"out": {}, "off": {}, "no": {}, "yes": {}, "you": {}, "i": {}, "we": {},
	"they": {}, "he": {}, "she": {}, "his": {}, "her": {}, "their": {},
	"our": {}, "my": {}, "your": {},
}

// Tokenize extracts lowercased keyword tokens from text, stopwords removed
func Tokenize(text string) []string {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := stopwords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// tokenSet builds a lookup set of article tokens
func tokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// Score computes the relevance of article text to a category keyword set,
// returning an integer in [0,10]. An exact token match contributes twice the
// keyword weight, a substring-only match contributes the weight once. The raw
// sum is scaled by the fraction of keywords matched and doubled, then clamped
// to [1,10]. Zero hits yield 0. Pure and deterministic.
func Score(text string, keywords []category.Keyword) int {
	if len(keywords) == 0 {
		return 0
	}

	textLower := strings.ToLower(text)
	tokens := tokenSet(textLower)

	raw, matched := 0, 0
	for _, kw := range keywords {
		if _, ok := tokens[kw.Word]; ok {
			raw += 2 * kw.Weight
			matched++
			continue
		}
		if strings.Contains(textLower, kw.Word) {
			raw += kw.Weight
			matched++
		}
	}

	if matched == 0 {
		return 0
	}

	ratio := float64(matched) / float64(len(keywords))
	score := int(float64(raw) * ratio * 2)
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}

// MatchesAny reports whether any of the given keywords occurs in the text,
// by token or substring match. Used for threshold-free custom keyword
// subscriptions where a single hit qualifies.
func MatchesAny(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}

	textLower := strings.ToLower(text)
	tokens := tokenSet(textLower)

	for _, kw := range keywords {
		word := strings.ToLower(strings.TrimSpace(kw))
		if word == "" {
			continue
		}
		if _, ok := tokens[word]; ok {
			return true
		}
		if strings.Contains(textLower, word) {
			return true
		}
	}
	return false
}
