// Package random returns random integers in [1, max] for things like picking a variant
// or a banner. It is not suitable for secrets.
package random
