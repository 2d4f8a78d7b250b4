// Package checksum fingerprints file content for the scan report, so two
// reports taken before and after a run show exactly which files changed.
package checksum
