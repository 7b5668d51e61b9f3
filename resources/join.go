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

// Package resources decides where files such as preferences are stored on the
// local filesystem.
package resources

import (
	"os"
	"path/filepath"
)

// the base directory for all resources. if a directory of this name exists in
// the current directory it is used in preference to the user's config
// directory. this makes portable installations possible.
const baseResourceDir = ".stella"

// JoinPath prepends the supplied path with an OS specific base path and
// creates any directories necessary to reach the end of the path. It does not
// otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(basePath(), filepath.Join(path...))

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}

func basePath() string {
	if _, err := os.Stat(baseResourceDir); err == nil {
		return baseResourceDir
	}

	config, err := os.UserConfigDir()
	if err != nil {
		return baseResourceDir
	}

	return filepath.Join(config, "stella")
}
