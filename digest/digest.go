// This file is part of Chroma2600.
//
// Chroma2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chroma2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chroma2600.  If not, see <https://www.gnu.org/licenses/>.

// Package digest fingerprints the television output. The Video and Audio
// types attach to a television as a renderer or mixer and accumulate a
// SHA-1 value over everything the TIA produces. Two emulations that agree on
// every digest agree on every pixel and every sample, which is what the
// regression tests lean on.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
package digest

// Digest implementations compute a running fingerprint of emulation output.
type Digest interface {
	// Hash returns the current fingerprint as a printable string
	Hash() string

	// ResetDigest returns the fingerprint to its initial value
	ResetDigest()
}
