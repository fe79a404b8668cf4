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

// Package archivefs allows files inside zip archives to be addressed as though
// the archive was a directory. For example, a program called pong.ch8 in the
// games directory of the archive programs.zip can be read with:
//
//	data, err := archivefs.ReadFile("programs.zip/games/pong.ch8")
//
// Filenames that do not pass through an archive are read from the filesystem
// as normal.
//
// Only zip archives are supported.
package archivefs
