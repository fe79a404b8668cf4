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

package archivefs

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Path is a location in the filesystem that may be inside a zip archive.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// the path inside the zip file. always uses forward slashes
	inZip string
}

func (afs Path) String() string {
	return afs.current
}

// IsDir returns true if the path is a directory. The root of an archive is
// considered to be a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if the path is an archive or is inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Set the path. Any previous path is closed first.
func (afs *Path) Set(pth string) error {
	afs.Close()

	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split() will remove a leading separator. put it back so that
	// filepath.Join() creates an absolute path
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	current := ""

	for _, l := range lst {
		current = filepath.Join(current, l)

		if afs.zf != nil {
			if afs.inZip != "" && !afs.isDir {
				afs.Close()
				return fmt.Errorf("archivefs: %s is not a directory", afs.inZip)
			}

			p := path.Join(afs.inZip, l)
			fi, err := afs.zf.Open(p)
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: %w", err)
			}
			stat, err := fi.Stat()
			fi.Close()
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: %w", err)
			}

			afs.inZip = p
			afs.isDir = stat.IsDir()
			continue // for loop
		}

		stat, err := os.Stat(current)
		if err != nil {
			afs.Close()
			return fmt.Errorf("archivefs: %w", err)
		}

		afs.isDir = stat.IsDir()
		if afs.isDir {
			continue // for loop
		}

		afs.zf, err = zip.OpenReader(current)
		if err == nil {
			afs.isDir = true
			continue // for loop
		}

		// a file that isn't an archive is fine so long as it's the last
		// element of the path. that's checked on the next iteration
		if !errors.Is(err, zip.ErrFormat) {
			afs.Close()
			return fmt.Errorf("archivefs: %w", err)
		}
	}

	afs.current = filepath.Clean(current)

	return nil
}

// Open the file at the path for reading.
func (afs *Path) Open() (io.ReadCloser, error) {
	if afs.current == "" {
		return nil, fmt.Errorf("archivefs: no path set")
	}
	if afs.isDir {
		return nil, fmt.Errorf("archivefs: %s is a directory", afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(afs.inZip)
		if err != nil {
			return nil, fmt.Errorf("archivefs: %w", err)
		}
		return f, nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, fmt.Errorf("archivefs: %w", err)
	}
	return f, nil
}

// Close any open archive and reset the path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZip = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}
