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

package event

// Latch is the console's view of the current input state. Values are written
// by the dispatcher and read by the emulated hardware every colour clock.
// Digital events latch 1 for pressed and 0 for released. Analog events latch
// the raw value.
type Latch struct {
	values [LastType]int32
}

// Set the value for an event.
func (lt *Latch) Set(ev Type, value int32) {
	if ev <= NoType || ev >= LastType {
		return
	}
	lt.values[ev] = value
}

// Get the current value for an event. Events outside of the defined range
// return zero.
func (lt *Latch) Get(ev Type) int32 {
	if ev <= NoType || ev >= LastType {
		return 0
	}
	return lt.values[ev]
}

// Clear every latched value. Called on every application state change so
// that a held input cannot leak across a mode boundary.
func (lt *Latch) Clear() {
	for i := range lt.values {
		lt.values[i] = 0
	}
}
