// Package tuning maps frequencies to equal-tempered notes.
//
// Notes are identified by MIDI number (A4 = 69). The reference pitch of A4
// is configurable; Standard uses 440 Hz. Deviations are expressed in cents,
// 1200·log2(f / fNote), so ±50 cents spans one semitone.
package tuning
