// This file is part of StellaGo.
//
// StellaGo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// StellaGo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with StellaGo.  If not, see <https://www.gnu.org/licenses/>.

// Package cartridgeloader is responsible for loading cartridge data from
// the filesystem. The loaded data is handed to the controller detection and
// to the emulation core.
package cartridgeloader

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ASzc/stella/curated"
)

// Loader is the result of loading a cartridge file.
type Loader struct {
	// the path of the file as given to NewLoader
	Filename string

	// the cartridge data
	Data []byte

	// md5 hash of the data, used as the cartridge's identity in
	// preferences and databases
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The file is read in full.
func NewLoader(filename string) (Loader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Loader{}, curated.Errorf("cartridgeloader: %v", err)
	}

	if len(data) == 0 {
		return Loader{}, curated.Errorf("cartridgeloader: %s is empty", filename)
	}

	return Loader{
		Filename: filename,
		Data:     data,
		Hash:     fmt.Sprintf("%x", md5.Sum(data)),
	}, nil
}

// ShortName returns a name suitable for display, the base of the filename
// without its extension.
func (ld Loader) ShortName() string {
	base := filepath.Base(ld.Filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
