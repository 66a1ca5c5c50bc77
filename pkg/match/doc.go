// Package match resolves abbreviated references to full target names using
// token-based fuzzy matching.
//
// Identifiers are split into tokens at uppercase letters and at the
// separator characters '_', '/' and '\', mirroring how scene and file names
// mark word boundaries. Queries are scored against candidates with a
// token-sort ratio in [0, 100], so an abbreviation like "coinLi" resolves
// to "CoincidentLine".
//
// Resolution never fails on low confidence: a best match below
// [ConfidenceThreshold] is still returned, flagged for diagnostics.
package match
