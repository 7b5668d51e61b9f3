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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ASzc/stella/cartridgeloader"
	"github.com/ASzc/stella/test"
)

func TestLoader(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "game.bin")
	test.ExpectedSuccess(t, os.WriteFile(pth, []byte("abc"), 0600))

	ld, err := cartridgeloader.NewLoader(pth)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(ld.Data), 3)
	test.Equate(t, ld.Hash, "900150983cd24fb0d6963f7d28e17f72")
	test.Equate(t, ld.ShortName(), "game")
}

func TestLoaderFailures(t *testing.T) {
	_, err := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectedFailure(t, err)

	pth := filepath.Join(t.TempDir(), "empty.bin")
	test.ExpectedSuccess(t, os.WriteFile(pth, []byte{}, 0600))
	_, err = cartridgeloader.NewLoader(pth)
	test.ExpectedFailure(t, err)
}
