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

// Mode is the input context that scopes a binding. A physical input may
// resolve to different events in different modes.
//
// EmulationMode and MenuMode are the two modes that bindings are looked up
// in directly. The controller modes are virtual: the active controller mode
// is merged into EmulationMode when a controller of that family is plugged
// in. CommonMode holds bindings shared by every controller family and is
// consulted as a fallback layer.
type Mode int

// List of defined modes.
const (
	EmulationMode Mode = iota
	MenuMode
	JoystickMode
	PaddlesMode
	KeypadMode
	CompuMateMode
	CommonMode
)

func (m Mode) String() string {
	switch m {
	case EmulationMode:
		return "emulation"
	case MenuMode:
		return "menu"
	case JoystickMode:
		return "joystick"
	case PaddlesMode:
		return "paddles"
	case KeypadMode:
		return "keypad"
	case CompuMateMode:
		return "compumate"
	case CommonMode:
		return "common"
	}
	return "unknown"
}
