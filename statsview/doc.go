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

// Package statsview is an optional package that will be built only when the
// statsview build constraint is present:
//
//	go build -tags statsview .
//
// It provides a HTTP server running locally offering runtime statistics. The
// underlying functionality is provided by "github.com/go-echarts/statsview".
// Graphical statistics are viewable at:
//
//	localhost:12800/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:12800/debug/pprof/
//
// Without the build constraint, Available() returns false and Launch() does
// nothing.
package statsview

// Address of the statistics server.
const Address = "localhost:12800"
