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

// Package keyboard resolves host keyboard input to logical events. Unlike
// joysticks there is only ever one keyboard, so a single shared KeyMap
// serves both console jacks.
package keyboard

import (
	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/input/keymap"
)

// Keyboard is the physical keyboard handler.
type Keyboard struct {
	keyMap *keymap.KeyMap

	// the controller modes most recently enabled for the two jacks. used
	// to rebuild the emulation mode table when a binding changes
	leftMode  event.Mode
	rightMode event.Mode
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type. The default bindings are installed.
func NewKeyboard() *Keyboard {
	k := &Keyboard{
		keyMap:    keymap.NewKeyMap(),
		leftMode:  event.JoystickMode,
		rightMode: event.JoystickMode,
	}
	k.InstallDefaultMappings()
	return k
}

// KeyMap returns the shared binding table.
func (k *Keyboard) KeyMap() *keymap.KeyMap {
	return k.keyMap
}

// InstallDefaultMappings writes the default key bindings for every mode.
// Events that already have a binding in a mode are left alone.
func (k *Keyboard) InstallDefaultMappings() {
	for _, d := range defaultKeyMappings {
		if len(k.keyMap.EventMappings(d.ev, d.mode)) == 0 {
			k.keyMap.Add(d.ev, d.mode, d.key, d.mod)
		}
	}
}

// EnableEmulationMappings rebuilds the emulation mode table from the common
// mode bindings and the bindings of the controller modes serving the two
// jacks.
func (k *Keyboard) EnableEmulationMappings(leftMode event.Mode, rightMode event.Mode) {
	k.leftMode = leftMode
	k.rightMode = rightMode
	k.RefreshEmulationMappings()
}

// RefreshEmulationMappings rebuilds the emulation mode table with the modes
// given to the most recent EnableEmulationMappings call. Must be called
// after a binding in one of the merged modes changes.
func (k *Keyboard) RefreshEmulationMappings() {
	k.keyMap.EraseMode(event.EmulationMode)
	k.keyMap.CopyMode(event.CommonMode, event.EmulationMode)
	k.keyMap.CopyMode(k.leftMode, event.EmulationMode)
	if k.rightMode != k.leftMode {
		k.keyMap.CopyMode(k.rightMode, event.EmulationMode)
	}
}

// HandleKey resolves a raw key transition against the bindings for the
// mode. Unbound keys are silently dropped.
func (k *Keyboard) HandleKey(mode event.Mode, key keymap.Key, mod keymap.Mod,
	pressed bool, repeated bool, dispatch event.Dispatch) {
	ev := k.keyMap.Get(mode, key, mod)
	if ev == event.NoType {
		return
	}

	var value int32
	if pressed {
		value = 1
	}
	dispatch(ev, value, repeated)
}
