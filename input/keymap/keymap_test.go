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

package keymap_test

import (
	"testing"

	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/input/keymap"
	"github.com/ASzc/stella/test"
)

func TestBindLookup(t *testing.T) {
	km := keymap.NewKeyMap()

	km.Add(event.ConsoleSelect, event.EmulationMode, keymap.KeyF1, keymap.ModNone)
	test.Equate(t, int(km.Get(event.EmulationMode, keymap.KeyF1, keymap.ModNone)), int(event.ConsoleSelect))

	// same key in a different mode is a different descriptor
	test.Equate(t, int(km.Get(event.MenuMode, keymap.KeyF1, keymap.ModNone)), int(event.NoType))

	// last bind wins
	km.Add(event.ConsoleReset, event.EmulationMode, keymap.KeyF1, keymap.ModNone)
	test.Equate(t, int(km.Get(event.EmulationMode, keymap.KeyF1, keymap.ModNone)), int(event.ConsoleReset))
	test.Equate(t, km.Size(), 1)

	km.Erase(event.EmulationMode, keymap.KeyF1, keymap.ModNone)
	test.Equate(t, int(km.Get(event.EmulationMode, keymap.KeyF1, keymap.ModNone)), int(event.NoType))
}

// every combination of binding modifier and press modifier for a single
// modifier group. a match requires identical modifier bits.
func TestModifierMatrix(t *testing.T) {
	mods := []keymap.Mod{
		keymap.ModNone,
		keymap.ModLShift,
		keymap.ModRShift,
		keymap.ModLShift | keymap.ModRShift,
	}

	for _, bound := range mods {
		for _, pressed := range mods {
			km := keymap.NewKeyMap()
			km.Add(event.JoystickZeroFire, event.EmulationMode, keymap.KeyA, bound)

			expected := event.NoType
			if bound == pressed {
				expected = event.JoystickZeroFire
			}

			got := km.Get(event.EmulationMode, keymap.KeyA, pressed)
			if got != expected {
				t.Errorf("bound %04b pressed %04b: got %d, wanted %d",
					int(bound), int(pressed), int(got), int(expected))
			}
		}
	}
}

func TestModifierToggle(t *testing.T) {
	km := keymap.NewKeyMap()
	km.Add(event.JoystickZeroFire, event.EmulationMode, keymap.KeyA, keymap.ModNone)

	// modifier matching enabled: a shifted press does not match a binding
	// recorded without modifiers
	test.Equate(t, int(km.Get(event.EmulationMode, keymap.KeyA, keymap.ModLShift)), int(event.NoType))

	// disabled: modifier state is ignored
	km.SetModEnabled(false)
	test.Equate(t, int(km.Get(event.EmulationMode, keymap.KeyA, keymap.ModLShift)), int(event.JoystickZeroFire))
	test.Equate(t, int(km.Get(event.EmulationMode, keymap.KeyA, keymap.ModNone)), int(event.JoystickZeroFire))
}

func TestNonModifierBitsStripped(t *testing.T) {
	km := keymap.NewKeyMap()

	// num-lock style bits outside the recognised groups never take part in
	// matching
	stray := keymap.Mod(0x1000)
	km.Add(event.JoystickZeroFire, event.EmulationMode, keymap.KeyA, stray)
	test.Equate(t, int(km.Get(event.EmulationMode, keymap.KeyA, keymap.ModNone)), int(event.JoystickZeroFire))
}

func TestReverseLookup(t *testing.T) {
	km := keymap.NewKeyMap()
	km.Add(event.JoystickZeroFire, event.EmulationMode, keymap.KeySpace, keymap.ModNone)
	km.Add(event.JoystickZeroFire, event.EmulationMode, keymap.KeyF, keymap.ModLCtrl)
	km.Add(event.JoystickZeroFire, event.MenuMode, keymap.KeyReturn, keymap.ModNone)

	mappings := km.EventMappings(event.JoystickZeroFire, event.EmulationMode)
	test.Equate(t, len(mappings), 2)

	km.EraseEvent(event.JoystickZeroFire, event.EmulationMode)
	test.Equate(t, len(km.EventMappings(event.JoystickZeroFire, event.EmulationMode)), 0)

	// the menu mode binding is untouched
	test.Equate(t, int(km.Get(event.MenuMode, keymap.KeyReturn, keymap.ModNone)), int(event.JoystickZeroFire))
}

func TestDescription(t *testing.T) {
	km := keymap.NewKeyMap()
	km.Add(event.JoystickZeroFire, event.EmulationMode, keymap.KeyA, keymap.ModLCtrl)
	test.Equate(t, km.Description(event.JoystickZeroFire, event.EmulationMode), "Ctrl+A")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	km := keymap.NewKeyMap()
	km.Add(event.ConsoleSelect, event.EmulationMode, keymap.KeyF1, keymap.ModNone)
	km.Add(event.ConsoleReset, event.EmulationMode, keymap.KeyF2, keymap.ModNone)
	km.Add(event.JoystickZeroFire, event.EmulationMode, keymap.KeySpace, keymap.ModLShift)
	km.Add(event.UIOK, event.MenuMode, keymap.KeyReturn, keymap.ModNone)

	saved := km.SaveMapping(event.EmulationMode)

	loaded := keymap.NewKeyMap()
	test.Equate(t, loaded.LoadMapping(event.EmulationMode, saved), 3)

	test.Equate(t, int(loaded.Get(event.EmulationMode, keymap.KeyF1, keymap.ModNone)), int(event.ConsoleSelect))
	test.Equate(t, int(loaded.Get(event.EmulationMode, keymap.KeyF2, keymap.ModNone)), int(event.ConsoleReset))
	test.Equate(t, int(loaded.Get(event.EmulationMode, keymap.KeySpace, keymap.ModLShift)), int(event.JoystickZeroFire))

	// menu mode bindings are not part of an emulation mode save
	test.Equate(t, int(loaded.Get(event.MenuMode, keymap.KeyReturn, keymap.ModNone)), int(event.NoType))
}

func TestLoadSkipsMalformedEntries(t *testing.T) {
	km := keymap.NewKeyMap()

	mapping := "1:37,0|garbage|9999999:1,0|2:38,0"
	test.Equate(t, km.LoadMapping(event.EmulationMode, mapping), 2)

	// an empty mapping string clears the mode
	test.Equate(t, km.LoadMapping(event.EmulationMode, ""), 0)
	test.Equate(t, km.Size(), 0)
}
