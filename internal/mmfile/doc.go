// Package mmfile provides platform-specific backing memory for a region:
// an anonymous mapping where the platform supports one, a heap slice
// otherwise.
package mmfile
