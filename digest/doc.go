// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package digest is used to create mathematical hashes of the emulation
// output. The Video type creates a hash of each display frame. The Audio type
// creates a hash of the sound timer activity.
//
// Hashes are chained: the hash of each frame is computed over the previous
// hash and the new frame. The final hash is therefore a fingerprint of the
// entire output of the emulation and can be used to verify that two runs of
// a program are identical.
package digest

// Digest implementations compute a hash for a stream of emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
