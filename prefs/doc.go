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

// Package prefs facilitates the storage of preference values to disk.
// Preferences can be added to a Disk instance with the Add() function. A key
// must be provided along with the prefs type. Keys must be unique within a
// single prefs file.
//
// Preference files are plain text files. The first line is a warning
// boilerplate and every subsequent line is a key and value pair separated by
// the string " :: ". Unrecognised entries are skipped rather than treated as
// a fatal error, meaning a single malformed line does not prevent the rest of
// the file from loading.
//
// Many different Disk instances can use the same prefs file. Saving one
// instance will preserve the values of keys registered with other instances.
package prefs
