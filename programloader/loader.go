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

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/archivefs"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// LoadError is the pattern for all errors returned by Load().
const LoadError = "program loader: %v"

// Loader specifies the program to load and, after a successful call to
// Load(), the program data.
type Loader struct {
	// filename or URL of the program
	Filename string

	// expected hash of the program. the empty string indicates that the hash
	// is unknown and need not be validated. after a successful Load() the
	// value will be the hash of the loaded data
	Hash string

	// the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return ld.Data != nil
}

// Size implements the memory.Program interface.
func (ld Loader) Size() int {
	return len(ld.Data)
}

// ByteAt implements the memory.Program interface.
func (ld Loader) ByteAt(offset int) uint8 {
	return ld.Data[offset]
}

// Load the program data. Filenames with a http or https scheme are fetched
// over the network. Everything else is treated as a local file, which may be
// inside a zip archive.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	if ld.Filename == "" {
		return curated.Errorf(LoadError, "no program specified")
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		data, err = fetch(ld.Filename)
	case "file":
		data, err = archivefs.ReadFile(ld.Filename)
	default:
		// a single letter scheme is probably a windows drive letter
		if len(scheme) == 1 {
			data, err = archivefs.ReadFile(ld.Filename)
		} else {
			err = fmt.Errorf("unsupported URL scheme (%s)", scheme)
		}
	}
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(LoadError, "unexpected hash value")
	}

	ld.Hash = hash
	ld.Data = data

	logger.Logf(logger.Allow, "program loader", "%s: %d bytes (sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}

func fetch(address string) ([]byte, error) {
	resp, err := http.Get(address)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
