// Package repetition rewrites stuttered openings in caption text.
package repetition
