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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function and implement the
// error interface.
//
// The pattern given to Errorf() identifies the error in addition to
// formatting it. The Is() function checks whether an error was created with a
// specific pattern; the Has() function checks whether the pattern occurs
// anywhere in the error chain; and the IsAny() function checks whether the
// error is curated at all.
//
// The Error() function normalises the error chain such that duplicate
// adjacent parts are removed. This means errors can be wrapped on every
// return without the final message stuttering.
package curated
