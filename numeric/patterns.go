package numeric

import "regexp"

// Shape checks. Values are trimmed before matching.
var (
	// 42, -3.5, +.5, 1e3
	plainNumberPattern = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?$`)

	// 2nd, 1er, 2.º, 5-й
	ordinalPattern = regexp.MustCompile(`^\d+[.\-]?[\p{L}º°ª]+$`)

	// IV, xiv, XII.
	romanPattern = regexp.MustCompile(`(?i)^[ivxlcdm]+\.?$`)

	// 2, 3 / 2-4 / 2 & 4 / D2–D5 / 2a, 3b
	rangePattern = regexp.MustCompile(`^\p{L}?\d+\p{L}?(?:\s*[,&\-–]\s*\p{L}?\d+\p{L}?)+$`)
)
