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

package archivefs_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/archivefs"
	"github.com/jetsetilly/gopher8/test"
)

// creates a directory containing a plain file and a zip archive. the archive
// contains a file at the root and a file in a sub-directory
func testDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "testfile"), []byte("testfile contents"), 0o600))

	f, err := os.Create(filepath.Join(dir, "testarchive.zip"))
	test.DemandSuccess(t, err)

	zw := zip.NewWriter(f)
	for name, contents := range map[string]string{
		"archivefile1":            "archivefile1 contents",
		"archivedir/archivefile2": "archivefile2 contents",
	} {
		w, err := zw.Create(name)
		test.DemandSuccess(t, err)
		_, err = w.Write([]byte(contents))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	return dir
}

func TestPath(t *testing.T) {
	dir := testDir(t)

	var afs archivefs.Path
	defer afs.Close()

	// non-existant file
	test.ExpectedFailure(t, afs.Set(filepath.Join(dir, "foo")))
	test.Equate(t, afs.String(), "")

	// a real directory
	test.DemandSuccess(t, afs.Set(dir))
	test.Equate(t, afs.String(), dir)
	test.ExpectedSuccess(t, afs.IsDir())
	test.ExpectedFailure(t, afs.InArchive())

	// a real file
	pth := filepath.Join(dir, "testfile")
	test.DemandSuccess(t, afs.Set(pth))
	test.Equate(t, afs.String(), pth)
	test.ExpectedFailure(t, afs.IsDir())
	test.ExpectedFailure(t, afs.InArchive())

	// a path through a file that isn't an archive
	test.ExpectedFailure(t, afs.Set(filepath.Join(dir, "testfile", "foo")))

	// an archive
	pth = filepath.Join(dir, "testarchive.zip")
	test.DemandSuccess(t, afs.Set(pth))
	test.ExpectedSuccess(t, afs.IsDir())
	test.ExpectedSuccess(t, afs.InArchive())
	_, err := afs.Open()
	test.ExpectedFailure(t, err)

	// a directory inside an archive
	test.DemandSuccess(t, afs.Set(filepath.Join(dir, "testarchive.zip", "archivedir")))
	test.ExpectedSuccess(t, afs.IsDir())
	test.ExpectedSuccess(t, afs.InArchive())

	// a file inside an archive
	test.DemandSuccess(t, afs.Set(filepath.Join(dir, "testarchive.zip", "archivedir", "archivefile2")))
	test.ExpectedFailure(t, afs.IsDir())
	test.ExpectedSuccess(t, afs.InArchive())

	// a missing file inside an archive
	test.ExpectedFailure(t, afs.Set(filepath.Join(dir, "testarchive.zip", "missing")))
	test.ExpectedFailure(t, afs.InArchive())
}

func TestReadFile(t *testing.T) {
	dir := testDir(t)

	d, err := archivefs.ReadFile(filepath.Join(dir, "testfile"))
	test.DemandSuccess(t, err)
	test.Equate(t, string(d), "testfile contents")

	d, err = archivefs.ReadFile(filepath.Join(dir, "testarchive.zip", "archivefile1"))
	test.DemandSuccess(t, err)
	test.Equate(t, string(d), "archivefile1 contents")

	d, err = archivefs.ReadFile(filepath.Join(dir, "testarchive.zip", "archivedir", "archivefile2"))
	test.DemandSuccess(t, err)
	test.Equate(t, string(d), "archivefile2 contents")

	_, err = archivefs.ReadFile(filepath.Join(dir, "testarchive.zip"))
	test.ExpectedFailure(t, err)

	_, err = archivefs.ReadFile(filepath.Join(dir, "missing"))
	test.ExpectedFailure(t, err)
}
