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

package keyboard_test

import (
	"testing"

	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/input/keyboard"
	"github.com/ASzc/stella/input/keymap"
	"github.com/ASzc/stella/test"
)

type collector struct {
	events   []event.Type
	values   []int32
	repeated []bool
}

func (c *collector) dispatch(ev event.Type, value int32, repeated bool) {
	c.events = append(c.events, ev)
	c.values = append(c.values, value)
	c.repeated = append(c.repeated, repeated)
}

func TestDefaultsAndMerge(t *testing.T) {
	k := keyboard.NewKeyboard()
	k.EnableEmulationMappings(event.JoystickMode, event.JoystickMode)

	c := &collector{}
	k.HandleKey(event.EmulationMode, keymap.KeyUp, keymap.ModNone, true, false, c.dispatch)
	test.Equate(t, len(c.events), 1)
	test.Equate(t, int(c.events[0]), int(event.JoystickZeroUp))
	test.Equate(t, c.values[0], int32(1))

	// common mode bindings are part of the merged table
	c = &collector{}
	k.HandleKey(event.EmulationMode, keymap.KeyF1, keymap.ModNone, true, false, c.dispatch)
	test.Equate(t, len(c.events), 1)
	test.Equate(t, int(c.events[0]), int(event.ConsoleSelect))
}

func TestControllerModeSwitch(t *testing.T) {
	k := keyboard.NewKeyboard()

	// with paddles plugged into the left jack the arrow keys drive the
	// paddle events instead
	k.EnableEmulationMappings(event.PaddlesMode, event.PaddlesMode)

	c := &collector{}
	k.HandleKey(event.EmulationMode, keymap.KeyLeft, keymap.ModNone, true, false, c.dispatch)
	test.Equate(t, len(c.events), 1)
	test.Equate(t, int(c.events[0]), int(event.PaddleZeroIncrease))
}

func TestUnboundKeyIsDropped(t *testing.T) {
	k := keyboard.NewKeyboard()
	k.EnableEmulationMappings(event.JoystickMode, event.JoystickMode)

	c := &collector{}
	k.HandleKey(event.EmulationMode, keymap.KeyM, keymap.ModNone, true, false, c.dispatch)
	test.Equate(t, len(c.events), 0)
}

func TestReleaseAndRepeatFlags(t *testing.T) {
	k := keyboard.NewKeyboard()
	k.EnableEmulationMappings(event.JoystickMode, event.JoystickMode)

	c := &collector{}
	k.HandleKey(event.EmulationMode, keymap.KeySpace, keymap.ModNone, true, false, c.dispatch)
	k.HandleKey(event.EmulationMode, keymap.KeySpace, keymap.ModNone, true, true, c.dispatch)
	k.HandleKey(event.EmulationMode, keymap.KeySpace, keymap.ModNone, false, false, c.dispatch)

	test.Equate(t, len(c.events), 3)
	test.Equate(t, c.values[0], int32(1))
	test.Equate(t, c.repeated[1], true)
	test.Equate(t, c.values[2], int32(0))
}

func TestInstallNeverClobbers(t *testing.T) {
	k := keyboard.NewKeyboard()

	// rebind the left jack fire to a different key
	k.KeyMap().EraseEvent(event.JoystickZeroFire, event.JoystickMode)
	k.KeyMap().Add(event.JoystickZeroFire, event.JoystickMode, keymap.KeyN, keymap.ModNone)

	k.InstallDefaultMappings()

	test.Equate(t, int(k.KeyMap().Get(event.JoystickMode, keymap.KeyN, keymap.ModNone)), int(event.JoystickZeroFire))
	test.Equate(t, int(k.KeyMap().Get(event.JoystickMode, keymap.KeySpace, keymap.ModNone)), int(event.NoType))
}

func TestMenuMode(t *testing.T) {
	k := keyboard.NewKeyboard()

	c := &collector{}
	k.HandleKey(event.MenuMode, keymap.KeyTab, keymap.ModLShift, true, false, c.dispatch)
	test.Equate(t, len(c.events), 1)
	test.Equate(t, int(c.events[0]), int(event.UINavPrev))

	c = &collector{}
	k.HandleKey(event.MenuMode, keymap.KeyTab, keymap.ModNone, true, false, c.dispatch)
	test.Equate(t, len(c.events), 1)
	test.Equate(t, int(c.events[0]), int(event.UINavNext))
}
