// Package csl provides vocabulary for Citation Style Language number handling.
//
// It names the CSL variables that carry numeric content (volume, page,
// edition, ...) and the match modes used by CSL conditions such as
// is-numeric:
//
//	<if is-numeric="volume issue" match="any">
//
// Variable names follow the CSL 1.0.2 specification, Appendix IV.
package csl
