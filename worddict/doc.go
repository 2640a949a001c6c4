// Package worddict provides a sorted-word-list implementation of
// core.Dictionary.
//
// What: Dict keeps its words uppercase and sorted. IsWord is a binary
// search; IsPrefix bisects to the first word ≥ the prefix and checks
// whether it starts with it. FromReader loads one word per line,
// uppercasing and dropping anything non-alphabetic; the single-letter
// words A and I are always part of the list, whether supplied or not.
//
// Complexity: O(log n) per query, O(n log n) construction.
package worddict
