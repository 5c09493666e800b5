// Package sanitizer holds the input clean-up applied before values are
// stored or logged.
package sanitizer
