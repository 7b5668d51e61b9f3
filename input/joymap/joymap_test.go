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

package joymap_test

import (
	"testing"

	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/input/joymap"
	"github.com/ASzc/stella/test"
)

func TestBindLookup(t *testing.T) {
	jm := joymap.NewJoyMap()

	fire := joymap.ButtonMapping(event.JoystickMode, 0)
	up := joymap.AxisMapping(event.JoystickMode, 1, joymap.AxisNeg)
	hat := joymap.HatMapping(event.JoystickMode, 0, joymap.HatUp)

	jm.Add(event.JoystickZeroFire, fire)
	jm.Add(event.JoystickZeroUp, up)
	jm.Add(event.JoystickZeroUp, hat)

	test.Equate(t, int(jm.Get(fire)), int(event.JoystickZeroFire))
	test.Equate(t, int(jm.Get(up)), int(event.JoystickZeroUp))
	test.Equate(t, int(jm.Get(hat)), int(event.JoystickZeroUp))

	// the opposite axis direction is unbound
	down := joymap.AxisMapping(event.JoystickMode, 1, joymap.AxisPos)
	test.Equate(t, int(jm.Get(down)), int(event.NoType))

	// many-to-one is fine. the reverse lookup returns both descriptors
	test.Equate(t, len(jm.EventMappings(event.JoystickZeroUp, event.JoystickMode)), 2)

	jm.Erase(up)
	test.Equate(t, int(jm.Get(up)), int(event.NoType))
	test.Equate(t, len(jm.EventMappings(event.JoystickZeroUp, event.JoystickMode)), 1)
}

func TestLastBindWins(t *testing.T) {
	jm := joymap.NewJoyMap()

	fire := joymap.ButtonMapping(event.JoystickMode, 0)
	jm.Add(event.JoystickZeroFire, fire)
	jm.Add(event.ConsoleReset, fire)

	test.Equate(t, int(jm.Get(fire)), int(event.ConsoleReset))
	test.Equate(t, jm.Size(), 1)
}

func TestDescription(t *testing.T) {
	test.Equate(t, joymap.ButtonMapping(event.JoystickMode, 3).Description(), "Button 3")
	test.Equate(t, joymap.AxisMapping(event.JoystickMode, 0, joymap.AxisNeg).Description(), "Axis 0 -")
	test.Equate(t, joymap.HatMapping(event.JoystickMode, 0, joymap.HatUp).Description(), "Hat 0 Up")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	jm := joymap.NewJoyMap()
	jm.Add(event.JoystickZeroFire, joymap.ButtonMapping(event.JoystickMode, 0))
	jm.Add(event.JoystickZeroUp, joymap.AxisMapping(event.JoystickMode, 1, joymap.AxisNeg))
	jm.Add(event.JoystickZeroDown, joymap.AxisMapping(event.JoystickMode, 1, joymap.AxisPos))
	jm.Add(event.JoystickZeroLeft, joymap.HatMapping(event.JoystickMode, 0, joymap.HatLeft))
	jm.Add(event.UIOK, joymap.ButtonMapping(event.MenuMode, 1))

	saved := jm.SaveMapping(event.JoystickMode)

	loaded := joymap.NewJoyMap()
	test.Equate(t, loaded.LoadMapping(event.JoystickMode, saved), 4)

	test.Equate(t, int(loaded.Get(joymap.ButtonMapping(event.JoystickMode, 0))), int(event.JoystickZeroFire))
	test.Equate(t, int(loaded.Get(joymap.AxisMapping(event.JoystickMode, 1, joymap.AxisNeg))), int(event.JoystickZeroUp))
	test.Equate(t, int(loaded.Get(joymap.AxisMapping(event.JoystickMode, 1, joymap.AxisPos))), int(event.JoystickZeroDown))
	test.Equate(t, int(loaded.Get(joymap.HatMapping(event.JoystickMode, 0, joymap.HatLeft))), int(event.JoystickZeroLeft))

	// menu mode bindings are not part of a joystick mode save
	test.Equate(t, int(loaded.Get(joymap.ButtonMapping(event.MenuMode, 1))), int(event.NoType))
}

func TestLoadSkipsMalformedEntries(t *testing.T) {
	jm := joymap.NewJoyMap()

	mapping := "1:0,-1,2,-1,4|nonsense|1:0,-1|9999999:0,-1,2,-1,4|2:1,-1,2,-1,4"
	test.Equate(t, jm.LoadMapping(event.JoystickMode, mapping), 2)
}
