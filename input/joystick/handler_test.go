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

package joystick_test

import (
	"testing"

	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/input/joymap"
	"github.com/ASzc/stella/input/joystick"
	"github.com/ASzc/stella/ports"
	"github.com/ASzc/stella/test"
)

// collector gathers dispatched events for inspection.
type collector struct {
	events []event.Type
	values []int32
}

func (c *collector) dispatch(ev event.Type, value int32, repeated bool) {
	c.events = append(c.events, ev)
	c.values = append(c.values, value)
}

func TestLowestFreeID(t *testing.T) {
	h := joystick.NewHandler()

	test.Equate(t, h.Add("Pad A", 2, 8, 1), 0)
	test.Equate(t, h.Add("Pad B", 2, 8, 1), 1)
	test.Equate(t, h.Add("Pad C", 2, 8, 1), 2)

	// removing a device frees its ID for the next connect
	test.ExpectedSuccess(t, h.Remove(1))
	test.Equate(t, h.Add("Pad D", 2, 8, 1), 1)

	test.Equate(t, h.Add("", 2, 8, 1), -1)
}

func TestReconnectRestoresBindings(t *testing.T) {
	h := joystick.NewHandler()

	id := h.Add("Pad A", 2, 8, 1)
	j := h.Get(id)

	// a custom binding on top of the defaults
	custom := joymap.ButtonMapping(event.JoystickMode, 7)
	j.JoyMap().Add(event.ConsoleReset, custom)

	test.ExpectedSuccess(t, h.Remove(id))
	test.Equate(t, h.Get(id) == nil, true)

	id = h.Add("Pad A", 2, 8, 1)
	test.Equate(t, int(h.Get(id).JoyMap().Get(custom)), int(event.ConsoleReset))
}

func TestForget(t *testing.T) {
	h := joystick.NewHandler()

	id := h.Add("Pad A", 2, 8, 1)

	// a connected device cannot be forgotten
	test.ExpectedFailure(t, h.Forget("Pad A"))

	test.ExpectedSuccess(t, h.Remove(id))
	test.ExpectedSuccess(t, h.Forget("Pad A"))
	test.ExpectedFailure(t, h.Forget("Pad A"))

	// reconnecting after a forget installs the defaults again
	id = h.Add("Pad A", 2, 8, 1)
	custom := joymap.ButtonMapping(event.JoystickMode, 7)
	test.Equate(t, int(h.Get(id).JoyMap().Get(custom)), int(event.NoType))
}

func TestDefaultInstallNeverClobbers(t *testing.T) {
	h := joystick.NewHandler()

	id := h.Add("Pad A", 2, 8, 1)
	j := h.Get(id)

	// rebind the fire button before defaults are reinstalled
	fire := joymap.ButtonMapping(event.JoystickMode, 3)
	j.JoyMap().EraseEvent(event.JoystickZeroFire, event.JoystickMode)
	j.JoyMap().Add(event.JoystickZeroFire, fire)

	h.InstallDefaultMappings(ports.Joystick, ports.LeftJack)

	// the custom binding survives and the default button 0 binding for the
	// same event was not installed
	test.Equate(t, int(j.JoyMap().Get(fire)), int(event.JoystickZeroFire))
	test.Equate(t, int(j.JoyMap().Get(joymap.ButtonMapping(event.JoystickMode, 0))), int(event.NoType))
}

func TestEmulationMappingMerge(t *testing.T) {
	h := joystick.NewHandler()

	id := h.Add("Pad A", 2, 8, 1)
	h.EnableEmulationMappings(event.JoystickMode, event.JoystickMode)

	c := &collector{}
	h.HandleButtonEvent(id, event.EmulationMode, 0, true, c.dispatch)
	test.Equate(t, len(c.events), 1)
	test.Equate(t, int(c.events[0]), int(event.JoystickZeroFire))
	test.Equate(t, c.values[0], int32(1))

	// common mode bindings are part of the merged table
	c = &collector{}
	h.HandleButtonEvent(id, event.EmulationMode, 4, true, c.dispatch)
	test.Equate(t, len(c.events), 1)
	test.Equate(t, int(c.events[0]), int(event.ConsoleSelect))
}

func TestAxisDigitalAndRelease(t *testing.T) {
	h := joystick.NewHandler()

	id := h.Add("Pad A", 2, 8, 1)
	h.EnableEmulationMappings(event.JoystickMode, event.JoystickMode)

	c := &collector{}

	// push the vertical axis up
	h.HandleAxisEvent(id, event.EmulationMode, 1, -32000, c.dispatch)
	test.Equate(t, len(c.events), 1)
	test.Equate(t, int(c.events[0]), int(event.JoystickZeroUp))
	test.Equate(t, c.values[0], int32(1))

	// reversing direction releases up before pressing down
	c = &collector{}
	h.HandleAxisEvent(id, event.EmulationMode, 1, 32000, c.dispatch)
	test.Equate(t, len(c.events), 2)
	test.Equate(t, int(c.events[0]), int(event.JoystickZeroUp))
	test.Equate(t, c.values[0], int32(0))
	test.Equate(t, int(c.events[1]), int(event.JoystickZeroDown))
	test.Equate(t, c.values[1], int32(1))

	// returning to centre releases down
	c = &collector{}
	h.HandleAxisEvent(id, event.EmulationMode, 1, 0, c.dispatch)
	test.Equate(t, len(c.events), 1)
	test.Equate(t, int(c.events[0]), int(event.JoystickZeroDown))
	test.Equate(t, c.values[0], int32(0))
}

func TestAxisAnalogFallthrough(t *testing.T) {
	h := joystick.NewHandler()

	id := h.Add("Pad A", 2, 8, 1)
	h.InstallDefaultMappings(ports.Paddles, ports.LeftJack)

	// paddles mode has no digital binding for axis 0 in the merged table
	// until the merge, so merge with paddles as the left controller
	j := h.Get(id)
	j.JoyMap().EraseMode(event.JoystickMode)
	h.EnableEmulationMappings(event.PaddlesMode, event.PaddlesMode)

	// the paddles default binds both digital and analog events to axis 0.
	// remove the digital ones so the analog fallthrough is visible
	j.JoyMap().EraseEvent(event.PaddleZeroDecrease, event.EmulationMode)
	j.JoyMap().EraseEvent(event.PaddleZeroIncrease, event.EmulationMode)

	c := &collector{}
	h.HandleAxisEvent(id, event.EmulationMode, 0, 12345, c.dispatch)
	test.Equate(t, len(c.events), 1)
	test.Equate(t, int(c.events[0]), int(event.PaddleZeroAnalog))
	test.Equate(t, c.values[0], int32(12345))
}

func TestHat(t *testing.T) {
	h := joystick.NewHandler()

	id := h.Add("Pad A", 2, 8, 1)
	h.EnableEmulationMappings(event.JoystickMode, event.JoystickMode)

	c := &collector{}
	h.HandleHatEvent(id, event.EmulationMode, 0, joymap.HatLeft, c.dispatch)
	test.Equate(t, len(c.events), 1)
	test.Equate(t, int(c.events[0]), int(event.JoystickZeroLeft))
	test.Equate(t, c.values[0], int32(1))

	// moving to another position releases the previous one
	c = &collector{}
	h.HandleHatEvent(id, event.EmulationMode, 0, joymap.HatRight, c.dispatch)
	test.Equate(t, len(c.events), 2)
	test.Equate(t, int(c.events[0]), int(event.JoystickZeroLeft))
	test.Equate(t, c.values[0], int32(0))
	test.Equate(t, int(c.events[1]), int(event.JoystickZeroRight))
	test.Equate(t, c.values[1], int32(1))
}

func TestHotPlugAfterStartup(t *testing.T) {
	h := joystick.NewHandler()

	// controller detection and the emulation merge happen before any
	// device has connected
	h.InstallDefaultMappings(ports.Paddles, ports.LeftJack)
	h.EnableEmulationMappings(event.PaddlesMode, event.JoystickMode)

	id := h.Add("Pad A", 2, 8, 1)

	// the late device received the paddles defaults for the left jack
	test.Equate(t, len(h.Get(id).JoyMap().EventMappings(event.PaddleZeroFire, event.PaddlesMode)) > 0, true)

	// and its derived emulation table resolves them
	c := &collector{}
	h.HandleButtonEvent(id, event.EmulationMode, 0, true, c.dispatch)
	test.Equate(t, len(c.events), 1)
	test.Equate(t, int(c.events[0]), int(event.PaddleZeroFire))

	// the common mode console switches are part of the merge too
	c = &collector{}
	h.HandleButtonEvent(id, event.EmulationMode, 4, true, c.dispatch)
	test.Equate(t, len(c.events), 1)
	test.Equate(t, int(c.events[0]), int(event.ConsoleSelect))
}

func TestSaveDeviceHasNoStickBindings(t *testing.T) {
	h := joystick.NewHandler()

	h.InstallDefaultMappings(ports.SaveKey, ports.RightJack)
	h.EnableEmulationMappings(event.JoystickMode, event.JoystickMode)

	_ = h.Add("Pad A", 2, 8, 1)
	id := h.Add("Pad B", 2, 8, 1)
	j := h.Get(id)

	// a save device drives no stick input so no joystick defaults were
	// installed for the right jack
	test.Equate(t, int(j.JoyMap().Get(joymap.ButtonMapping(event.JoystickMode, 0))), int(event.NoType))

	// menu navigation and the console switches still work
	test.Equate(t, int(j.JoyMap().Get(joymap.ButtonMapping(event.MenuMode, 0))), int(event.UISelect))
	test.Equate(t, int(j.JoyMap().Get(joymap.ButtonMapping(event.CommonMode, 4))), int(event.ConsoleSelect))
}

func TestUnknownDeviceIsDropped(t *testing.T) {
	h := joystick.NewHandler()

	c := &collector{}
	h.HandleButtonEvent(99, event.EmulationMode, 0, true, c.dispatch)
	h.HandleAxisEvent(99, event.EmulationMode, 0, 32000, c.dispatch)
	h.HandleHatEvent(99, event.EmulationMode, 0, joymap.HatUp, c.dispatch)
	test.Equate(t, len(c.events), 0)
}

func TestDatabaseRoundTrip(t *testing.T) {
	h := joystick.NewHandler()

	id := h.Add("Pad A", 2, 8, 1)
	custom := joymap.ButtonMapping(event.JoystickMode, 7)
	h.Get(id).JoyMap().Add(event.ConsoleReset, custom)

	saved := h.ExportDatabase()

	// a fresh handler with the imported database restores the bindings on
	// connect
	h2 := joystick.NewHandler()
	h2.ImportDatabase(saved)
	id2 := h2.Add("Pad A", 2, 8, 1)
	test.Equate(t, int(h2.Get(id2).JoyMap().Get(custom)), int(event.ConsoleReset))
}
