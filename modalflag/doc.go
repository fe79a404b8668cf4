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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas, with the flag package, you call the Parse()
// function after defining the flags, with modalflag you call NewArgs() and
// then NewMode() before defining the flags:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	scale := md.AddInt("scale", 10, "window scale")
//	p, err := md.Parse()
//
// Sub-modes are added with AddSubModes(). The first sub-mode is the default
// and is selected when the next argument does not name one of the other
// sub-modes. Sub-mode names are not case sensitive.
//
//	md.AddSubModes("PLAY", "TERM", "PERFORMANCE", "VERSION")
//	p, err := md.Parse()
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		...
//	}
//
// The path of modes selected so far is returned by Path(). For example,
// "PERFORMANCE".
package modalflag
