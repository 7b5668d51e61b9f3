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

package joystick

import (
	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/input/joymap"
)

// the default binding tables below are known good starter mappings for a
// generic two axis, one hat gamepad. they are installed per controller
// family when a cartridge is loaded, but only for events the user has not
// already bound.

type defaultMapping struct {
	ev event.Type
	m  joymap.Mapping
}

var defaultLeftJoystickMappings = []defaultMapping{
	{event.JoystickZeroUp, joymap.AxisMapping(event.JoystickMode, 1, joymap.AxisNeg)},
	{event.JoystickZeroDown, joymap.AxisMapping(event.JoystickMode, 1, joymap.AxisPos)},
	{event.JoystickZeroLeft, joymap.AxisMapping(event.JoystickMode, 0, joymap.AxisNeg)},
	{event.JoystickZeroRight, joymap.AxisMapping(event.JoystickMode, 0, joymap.AxisPos)},
	{event.JoystickZeroUp, joymap.HatMapping(event.JoystickMode, 0, joymap.HatUp)},
	{event.JoystickZeroDown, joymap.HatMapping(event.JoystickMode, 0, joymap.HatDown)},
	{event.JoystickZeroLeft, joymap.HatMapping(event.JoystickMode, 0, joymap.HatLeft)},
	{event.JoystickZeroRight, joymap.HatMapping(event.JoystickMode, 0, joymap.HatRight)},
	{event.JoystickZeroFire, joymap.ButtonMapping(event.JoystickMode, 0)},
	{event.JoystickZeroFire5, joymap.ButtonMapping(event.JoystickMode, 1)},
	{event.JoystickZeroFire9, joymap.ButtonMapping(event.JoystickMode, 2)},
}

var defaultRightJoystickMappings = []defaultMapping{
	{event.JoystickOneUp, joymap.AxisMapping(event.JoystickMode, 1, joymap.AxisNeg)},
	{event.JoystickOneDown, joymap.AxisMapping(event.JoystickMode, 1, joymap.AxisPos)},
	{event.JoystickOneLeft, joymap.AxisMapping(event.JoystickMode, 0, joymap.AxisNeg)},
	{event.JoystickOneRight, joymap.AxisMapping(event.JoystickMode, 0, joymap.AxisPos)},
	{event.JoystickOneUp, joymap.HatMapping(event.JoystickMode, 0, joymap.HatUp)},
	{event.JoystickOneDown, joymap.HatMapping(event.JoystickMode, 0, joymap.HatDown)},
	{event.JoystickOneLeft, joymap.HatMapping(event.JoystickMode, 0, joymap.HatLeft)},
	{event.JoystickOneRight, joymap.HatMapping(event.JoystickMode, 0, joymap.HatRight)},
	{event.JoystickOneFire, joymap.ButtonMapping(event.JoystickMode, 0)},
	{event.JoystickOneFire5, joymap.ButtonMapping(event.JoystickMode, 1)},
	{event.JoystickOneFire9, joymap.ButtonMapping(event.JoystickMode, 2)},
}

var defaultLeftPaddlesMappings = []defaultMapping{
	{event.PaddleZeroAnalog, joymap.AxisMapping(event.PaddlesMode, 0, joymap.AxisDirNone)},
	{event.PaddleZeroDecrease, joymap.AxisMapping(event.PaddlesMode, 0, joymap.AxisNeg)},
	{event.PaddleZeroIncrease, joymap.AxisMapping(event.PaddlesMode, 0, joymap.AxisPos)},
	{event.PaddleZeroFire, joymap.ButtonMapping(event.PaddlesMode, 0)},
	{event.PaddleOneAnalog, joymap.AxisMapping(event.PaddlesMode, 1, joymap.AxisDirNone)},
	{event.PaddleOneDecrease, joymap.AxisMapping(event.PaddlesMode, 1, joymap.AxisNeg)},
	{event.PaddleOneIncrease, joymap.AxisMapping(event.PaddlesMode, 1, joymap.AxisPos)},
	{event.PaddleOneFire, joymap.ButtonMapping(event.PaddlesMode, 1)},
}

var defaultRightPaddlesMappings = []defaultMapping{
	{event.PaddleTwoAnalog, joymap.AxisMapping(event.PaddlesMode, 0, joymap.AxisDirNone)},
	{event.PaddleTwoDecrease, joymap.AxisMapping(event.PaddlesMode, 0, joymap.AxisNeg)},
	{event.PaddleTwoIncrease, joymap.AxisMapping(event.PaddlesMode, 0, joymap.AxisPos)},
	{event.PaddleTwoFire, joymap.ButtonMapping(event.PaddlesMode, 0)},
	{event.PaddleThreeAnalog, joymap.AxisMapping(event.PaddlesMode, 1, joymap.AxisDirNone)},
	{event.PaddleThreeDecrease, joymap.AxisMapping(event.PaddlesMode, 1, joymap.AxisNeg)},
	{event.PaddleThreeIncrease, joymap.AxisMapping(event.PaddlesMode, 1, joymap.AxisPos)},
	{event.PaddleThreeFire, joymap.ButtonMapping(event.PaddlesMode, 1)},
}

var defaultLeftKeypadMappings = []defaultMapping{
	{event.KeyboardZero1, joymap.ButtonMapping(event.KeypadMode, 0)},
	{event.KeyboardZero2, joymap.ButtonMapping(event.KeypadMode, 1)},
	{event.KeyboardZero3, joymap.ButtonMapping(event.KeypadMode, 2)},
	{event.KeyboardZero4, joymap.ButtonMapping(event.KeypadMode, 3)},
	{event.KeyboardZero5, joymap.ButtonMapping(event.KeypadMode, 4)},
	{event.KeyboardZero6, joymap.ButtonMapping(event.KeypadMode, 5)},
	{event.KeyboardZero7, joymap.ButtonMapping(event.KeypadMode, 6)},
	{event.KeyboardZero8, joymap.ButtonMapping(event.KeypadMode, 7)},
	{event.KeyboardZero9, joymap.ButtonMapping(event.KeypadMode, 8)},
	{event.KeyboardZeroStar, joymap.ButtonMapping(event.KeypadMode, 9)},
	{event.KeyboardZero0, joymap.ButtonMapping(event.KeypadMode, 10)},
	{event.KeyboardZeroPound, joymap.ButtonMapping(event.KeypadMode, 11)},
}

var defaultRightKeypadMappings = []defaultMapping{
	{event.KeyboardOne1, joymap.ButtonMapping(event.KeypadMode, 0)},
	{event.KeyboardOne2, joymap.ButtonMapping(event.KeypadMode, 1)},
	{event.KeyboardOne3, joymap.ButtonMapping(event.KeypadMode, 2)},
	{event.KeyboardOne4, joymap.ButtonMapping(event.KeypadMode, 3)},
	{event.KeyboardOne5, joymap.ButtonMapping(event.KeypadMode, 4)},
	{event.KeyboardOne6, joymap.ButtonMapping(event.KeypadMode, 5)},
	{event.KeyboardOne7, joymap.ButtonMapping(event.KeypadMode, 6)},
	{event.KeyboardOne8, joymap.ButtonMapping(event.KeypadMode, 7)},
	{event.KeyboardOne9, joymap.ButtonMapping(event.KeypadMode, 8)},
	{event.KeyboardOneStar, joymap.ButtonMapping(event.KeypadMode, 9)},
	{event.KeyboardOne0, joymap.ButtonMapping(event.KeypadMode, 10)},
	{event.KeyboardOnePound, joymap.ButtonMapping(event.KeypadMode, 11)},
}

// shared by every controller family.
var defaultCommonMappings = []defaultMapping{
	{event.ConsoleSelect, joymap.ButtonMapping(event.CommonMode, 4)},
	{event.ConsoleReset, joymap.ButtonMapping(event.CommonMode, 5)},
	{event.CmdMenuMode, joymap.ButtonMapping(event.CommonMode, 6)},
	{event.ExitMode, joymap.ButtonMapping(event.CommonMode, 7)},
}

var defaultMenuMappings = []defaultMapping{
	{event.UIUp, joymap.AxisMapping(event.MenuMode, 1, joymap.AxisNeg)},
	{event.UIDown, joymap.AxisMapping(event.MenuMode, 1, joymap.AxisPos)},
	{event.UILeft, joymap.AxisMapping(event.MenuMode, 0, joymap.AxisNeg)},
	{event.UIRight, joymap.AxisMapping(event.MenuMode, 0, joymap.AxisPos)},
	{event.UIUp, joymap.HatMapping(event.MenuMode, 0, joymap.HatUp)},
	{event.UIDown, joymap.HatMapping(event.MenuMode, 0, joymap.HatDown)},
	{event.UILeft, joymap.HatMapping(event.MenuMode, 0, joymap.HatLeft)},
	{event.UIRight, joymap.HatMapping(event.MenuMode, 0, joymap.HatRight)},
	{event.UISelect, joymap.ButtonMapping(event.MenuMode, 0)},
	{event.UIOK, joymap.ButtonMapping(event.MenuMode, 1)},
	{event.UICancel, joymap.ButtonMapping(event.MenuMode, 2)},
	{event.UITabPrev, joymap.ButtonMapping(event.MenuMode, 3)},
	{event.UITabNext, joymap.ButtonMapping(event.MenuMode, 4)},
}

// install writes the mappings into the table, skipping any event that
// already has a binding in the mapping's mode. User customisations are
// never clobbered.
func install(jm *joymap.JoyMap, mappings []defaultMapping) {
	for _, d := range mappings {
		if len(jm.EventMappings(d.ev, d.m.Mode)) == 0 {
			jm.Add(d.ev, d.m)
		}
	}
}
