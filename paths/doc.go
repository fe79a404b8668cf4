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

// Package paths contains functions to prepare filenames for files created by
// Gopher8, such as profiling output.
//
// UniqueFilename() creates a name from a prefix, the short name of the
// program and a timestamp. For example:
//
//	fn := paths.UniqueFilename("performance", "pong")
//
// returns something like "performance_pong_20221019_120503".
package paths
