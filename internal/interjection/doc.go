// Package interjection drops hesitation sounds and exclamations from the
// start and end of caption lines.
package interjection
