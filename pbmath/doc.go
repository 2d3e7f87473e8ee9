// Package pbmath provides the extended-precision float comparisons and
// small integer helpers the rule engines share: epsilon-tolerant
// less/greater/equal, ceiling division, and optional-value folds.
package pbmath
