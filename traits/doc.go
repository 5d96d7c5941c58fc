// Package traits holds the small pieces every container in this module
// is assembled from: the iterator category descriptor and the iterator
// constraints built on it, the integral predicate, Pair, and the range
// algorithms Equal and LexicographicalCompare.
//
// Nothing in here allocates or keeps state.
package traits
