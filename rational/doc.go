// Package rational provides exact rational arithmetic in lowest terms.
//
// What:
//
//   - Rational holds a numerator and a strictly positive denominator,
//     always reduced via gcd so equal values compare equal structurally.
//   - Add/Sub/Mul/Div and the ordering predicates never lose precision,
//     unlike float64, which makes them suitable for deciding whether a
//     line-of-sight segment grazes a cell boundary exactly.
//
// Why:
//
//   - The visibility tester (see package visibility) compares a
//     manipulator-to-cell segment against half-integer cell boundaries.
//     Floating point introduces false positives/negatives right at those
//     boundaries; exact rationals eliminate the whole bug class.
//
// Complexity:
//
//   - Every operation is O(1) (bounded by a single gcd reduction).
package rational
