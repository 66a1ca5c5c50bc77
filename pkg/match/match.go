package match

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/sketchlab/sketchcast/pkg/errors"
)

// ConfidenceThreshold is the score below which a resolution is flagged as
// low confidence. Matches below the threshold are still accepted.
const ConfidenceThreshold = 95

// Match is the resolution of a single query against the candidate set.
type Match struct {
	Query  string // the input query, as given
	Target string // the resolved candidate name
	Score  int    // similarity score in [0, 100]
}

// LowConfidence reports whether the match scored below ConfidenceThreshold.
// Low-confidence matches are accepted but should be surfaced to the user.
func (m Match) LowConfidence() bool {
	return m.Score < ConfidenceThreshold
}

// Resolve matches each query against the candidate targets and returns one
// Match per query, preserving query order. Queries and targets are tokenized
// with SplitTokens and compared with a token-order-insensitive ratio, so
// abbreviations that preserve the target's word boundaries score highest.
//
// Ties on equal scores resolve to the earliest target in the slice, making
// resolution deterministic for a fixed target order.
//
// Resolve returns a NO_TARGETS error when targets is empty and an
// INVALID_INPUT error when a query is empty. Low-confidence matches are not
// errors.
func Resolve(targets, queries []string) ([]Match, error) {
	if len(targets) == 0 {
		return nil, errors.New(errors.ErrCodeNoTargets, "no candidate targets to match against")
	}

	tokenized := make([]string, len(targets))
	for i, target := range targets {
		tokenized[i] = Tokenize(target)
	}

	matches := make([]Match, 0, len(queries))
	for _, query := range queries {
		if query == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "query cannot be empty")
		}

		queryTokens := Tokenize(query)
		best := Match{Query: query, Score: -1}
		for i, candidate := range tokenized {
			// forceAscii off, full processing on: both sides are
			// lowercased and cleansed before comparison.
			score := fuzzy.TokenSortRatio(queryTokens, candidate, false, true)
			if score > best.Score {
				best = Match{Query: query, Target: targets[i], Score: score}
			}
		}
		matches = append(matches, best)
	}
	return matches, nil
}

// Score returns the similarity score of a single query against a single
// target, using the same tokenization and ratio as Resolve.
func Score(target, query string) int {
	return fuzzy.TokenSortRatio(Tokenize(query), Tokenize(target), false, true)
}

// Targets extracts the resolved target names from matches, preserving order.
func Targets(matches []Match) []string {
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Target
	}
	return names
}
