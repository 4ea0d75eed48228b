// Package interval stores closed integer ranges and answers overlap,
// containment and union queries over them.
//
// What:
//
//   - Interval is an immutable closed range [start, end] with start ≤ end.
//   - Tree is an AVL-balanced interval tree keyed by start; every node keeps
//     the largest end of its subtree so overlap queries can prune.
//   - Merge / (*Tree).MergeAll coalesce overlapping and adjoining ranges into
//     a sorted, disjoint union.
//   - Parse / ParseList read "<start>-<end>" tokens separated by commas or
//     newlines. Malformed tokens are reported one by one and excluded.
//
// Why:
//
//   - Id allow-lists: "is this id inside any of these ranges?"
//   - Range compaction: how many distinct integers do the ranges cover?
//
// Complexity:
//
//   - Insert:      O(log n)
//   - Query:       O(log n + k), k = number of reported intervals
//   - Contains:    O(log n)
//   - MergeAll:    O(n)        (in-order walk is already sorted)
//   - Merge:       O(n log n)  (sorts a copy)
//
// Errors:
//
//   - ErrInvalidRange:   start > end.
//   - ErrMalformedRange: token without separator or with non-numeric bounds.
//   - *ParseError:       per-token failure returned by ParseList.
package interval
