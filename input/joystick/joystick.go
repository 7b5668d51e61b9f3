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

// Package joystick tracks the physical joystick like devices connected to
// the host. Every device owns its own binding table. Devices are remembered
// by name after disconnection so that a device that reconnects gets its
// bindings back.
package joystick

import (
	"fmt"

	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/input/joymap"
)

// deadzone is the threshold below which axis travel does not register as a
// digital direction.
const deadzone = 3200

// PhysicalJoystick represents one connected device.
type PhysicalJoystick struct {
	Name string

	// runtime ID assigned on connect. IDs are recycled, the lowest free ID
	// is always used
	ID int

	NumAxes    int
	NumButtons int
	NumHats    int

	joyMap *joymap.JoyMap

	// last observed direction per axis, for release events on direction
	// change
	axisLastDir []joymap.AxisDir

	// last observed position per hat
	hatLastDir []joymap.HatDir
}

func newPhysicalJoystick(name string, id int, axes int, buttons int, hats int) *PhysicalJoystick {
	j := &PhysicalJoystick{
		Name:        name,
		ID:          id,
		NumAxes:     axes,
		NumButtons:  buttons,
		NumHats:     hats,
		joyMap:      joymap.NewJoyMap(),
		axisLastDir: make([]joymap.AxisDir, axes),
		hatLastDir:  make([]joymap.HatDir, hats),
	}
	for i := range j.axisLastDir {
		j.axisLastDir[i] = joymap.AxisDirNone
	}
	for i := range j.hatLastDir {
		j.hatLastDir[i] = joymap.HatCenter
	}
	return j
}

func (j *PhysicalJoystick) String() string {
	return fmt.Sprintf("%s (id %d, %d axes, %d buttons, %d hats)",
		j.Name, j.ID, j.NumAxes, j.NumButtons, j.NumHats)
}

// JoyMap returns the device's binding table.
func (j *PhysicalJoystick) JoyMap() *joymap.JoyMap {
	return j.joyMap
}

// axisDir converts a raw axis value to a digital direction.
func axisDir(value int16) joymap.AxisDir {
	switch {
	case value < -deadzone:
		return joymap.AxisNeg
	case value > deadzone:
		return joymap.AxisPos
	}
	return joymap.AxisDirNone
}

// handleAxis resolves a raw axis value against the device's bindings in the
// mode. Digital bindings take priority. An axis with no digital binding for
// the direction of travel falls through to the analog binding for the axis,
// which receives the raw value.
func (j *PhysicalJoystick) handleAxis(mode event.Mode, axis int, value int16, dispatch event.Dispatch) {
	if axis < 0 || axis >= j.NumAxes {
		return
	}

	dir := axisDir(value)
	last := j.axisLastDir[axis]

	if dir != last {
		// release the previous direction before pressing the new one
		if last != joymap.AxisDirNone {
			if ev := j.joyMap.Get(joymap.AxisMapping(mode, axis, last)); ev != event.NoType {
				dispatch(ev, 0, false)
			}
		}
		if dir != joymap.AxisDirNone {
			if ev := j.joyMap.Get(joymap.AxisMapping(mode, axis, dir)); ev != event.NoType {
				dispatch(ev, 1, false)
				j.axisLastDir[axis] = dir
				return
			}
		}
		j.axisLastDir[axis] = dir
	}

	// analog fallthrough
	if ev := j.joyMap.Get(joymap.AxisMapping(mode, axis, joymap.AxisDirNone)); ev != event.NoType {
		dispatch(ev, int32(value), false)
	}
}

// handleButton resolves a raw button transition against the device's
// bindings in the mode.
func (j *PhysicalJoystick) handleButton(mode event.Mode, button int, pressed bool, dispatch event.Dispatch) {
	if button < 0 || button >= j.NumButtons {
		return
	}

	if ev := j.joyMap.Get(joymap.ButtonMapping(mode, button)); ev != event.NoType {
		var value int32
		if pressed {
			value = 1
		}
		dispatch(ev, value, false)
	}
}

// handleHat resolves a raw hat position against the device's bindings in the
// mode. Leaving a position releases its binding before the new position's
// binding is pressed.
func (j *PhysicalJoystick) handleHat(mode event.Mode, hat int, dir joymap.HatDir, dispatch event.Dispatch) {
	if hat < 0 || hat >= j.NumHats {
		return
	}

	last := j.hatLastDir[hat]
	if dir == last {
		return
	}

	if last != joymap.HatCenter {
		if ev := j.joyMap.Get(joymap.HatMapping(mode, hat, last)); ev != event.NoType {
			dispatch(ev, 0, false)
		}
	}

	if dir != joymap.HatCenter {
		if ev := j.joyMap.Get(joymap.HatMapping(mode, hat, dir)); ev != event.NoType {
			dispatch(ev, 1, false)
		}
	}

	j.hatLastDir[hat] = dir
}
