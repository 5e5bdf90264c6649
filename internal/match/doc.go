// Package match provides field name normalization, Levenshtein distance
// calculation, and candidate ranking for "did you mean" suggestions.
//
// Key functions:
//   - LowerName: the canonical lower-case spelling of a name, used as lookup key
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates / Suggest: rank known names against an unknown one
package match
