// SPDX-License-Identifier: MIT

// Package rabinkarp records the Rabin-Karp rolling-hash string search as a
// step.Run.
//
// Hashing is polynomial over rune code points:
//
//	hash(s[0..m)) = (s[0]·Base^(m-1) + … + s[m-1]) mod Modulus
//
// with Base = 256 and Modulus = 101. With so small a modulus, spurious hits
// (collisions) show up even on short inputs.
//
// Steps:
//
//   - hash          pattern hash and first window hash
//   - compare-hash  one per window position
//   - verify        one per compared rune, only when the hashes are equal
//   - match         every rune agreed
//   - collision     equal hashes, different runes
//   - slide         rolling update to the next window
//   - done          terminal
//
// A pattern longer than the text yields a single terminal done step.
//
// Errors:
//
//   - ErrEmptyPattern  the pattern has no runes.
package rabinkarp
