// Package xorcism implements a streaming repeating-key XOR munger.  A
// Munger XORs data against an infinite cyclic repetition of a finite key,
// keeping a cursor into that repetition across calls, so that munging a
// buffer in many chunks produces byte-identical output to munging it all at
// once.  XOR is self-inverse, so munging munged output with a fresh Munger
// built from the same key recovers the original data.
//
// This is not encryption in any meaningful sense; repeating-key XOR is
// trivially breakable.  The package only cares about correctness and
// streaming composability.
package xorcism
