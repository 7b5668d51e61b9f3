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

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ASzc/stella/curated"
	"github.com/ASzc/stella/logger"
)

// WarningBoilerPlate is the first line of a prefs file. If the first line of
// the file does not match, the file will not be treated as a prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value in a prefs file entry.
const keySep = " :: "

// Disk represents a collection of preference values as stored on disk. Keys
// are written in alphabetical order.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from disk. The key
// must not contain the key separator string and must not have been added
// before.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) {
		return curated.Errorf("prefs: %v", fmt.Sprintf("key cannot contain %q", keySep))
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: key already registered (%s)", key)
	}

	dsk.entries[key] = p

	return nil
}

// HasEntry returns true if the key has been added to the Disk instance.
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// Reset all preferences registered with this Disk instance to their zero
// state. The disk file is not touched.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// Save current preference values to disk. Values that already exist in the
// prefs file but which are not registered with this Disk instance are
// preserved.
func (dsk *Disk) Save() error {
	// load entirety of currently saved prefs file
	existing, err := loadEntries(dsk.path)
	if err != nil {
		return err
	}

	// overwrite/extend existing entries with live values
	for key, p := range dsk.entries {
		existing[key] = p.String()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	keys := make([]string, 0, len(existing))
	for key := range existing {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, key := range keys {
		s.WriteString(key)
		s.WriteString(keySep)
		s.WriteString(existing[key])
		s.WriteString("\n")
	}

	if _, err := f.WriteString(s.String()); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Values in the prefs file that have not
// been registered with this Disk instance are ignored. Entries that cannot be
// parsed or that fail to be set are logged and skipped.
func (dsk *Disk) Load() error {
	existing, err := loadEntries(dsk.path)
	if err != nil {
		return err
	}

	for key, value := range existing {
		if p, ok := dsk.entries[key]; ok {
			if err := p.Set(value); err != nil {
				logger.Logf("prefs", "cannot set value for %s: %v", key, err)
			}
		}
	}

	return nil
}

// loadEntries returns the raw key/value pairs of the prefs file. A prefs file
// that does not exist is treated as an empty file.
func loadEntries(path string) (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil && err != io.EOF {
			return nil, curated.Errorf("prefs: %v", err)
		}
		return entries, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf("prefs: not a valid prefs file (%s)", path)
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), keySep, 2)
		if len(spt) != 2 {
			logger.Logf("prefs", "malformed entry: %s", scanner.Text())
			continue
		}
		entries[spt[0]] = spt[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return entries, nil
}
