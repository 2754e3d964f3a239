// Package match provides Levenshtein distance calculation and typo
// pairing for key-set diagnostics.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings, with an
//     "infinite" sentinel guarding against oversized inputs
//   - Similarity: normalizes distance into a 0..1 score
//   - PairTypos: pairs unexpected keys with the missing keys they most
//     resemble
package match
