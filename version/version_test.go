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

package version_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/version"
)

func TestSummary(t *testing.T) {
	v, r, release := version.Version()
	test.ExpectedFailure(t, v == "")
	test.ExpectedFailure(t, r == "")

	s := version.Summary()
	test.ExpectedSuccess(t, strings.HasPrefix(s, version.ApplicationName))
	test.ExpectedSuccess(t, strings.Contains(s, v))
	if !release {
		test.ExpectedSuccess(t, strings.Contains(s, r))
	}
}
