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

package keyboard

import (
	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/input/keymap"
)

type defaultKeyMapping struct {
	ev   event.Type
	mode event.Mode
	key  keymap.Key
	mod  keymap.Mod
}

var defaultKeyMappings = []defaultKeyMapping{
	// console switches and application events are common to every
	// controller family
	{event.ConsoleSelect, event.CommonMode, keymap.KeyF1, keymap.ModNone},
	{event.ConsoleReset, event.CommonMode, keymap.KeyF2, keymap.ModNone},
	{event.ConsoleColor, event.CommonMode, keymap.KeyF3, keymap.ModNone},
	{event.ConsoleBlackWhite, event.CommonMode, keymap.KeyF4, keymap.ModNone},
	{event.ConsoleLeftDiffA, event.CommonMode, keymap.KeyF5, keymap.ModNone},
	{event.ConsoleLeftDiffB, event.CommonMode, keymap.KeyF6, keymap.ModNone},
	{event.ConsoleRightDiffA, event.CommonMode, keymap.KeyF7, keymap.ModNone},
	{event.ConsoleRightDiffB, event.CommonMode, keymap.KeyF8, keymap.ModNone},

	{event.SaveState, event.CommonMode, keymap.KeyF9, keymap.ModNone},
	{event.ChangeState, event.CommonMode, keymap.KeyF10, keymap.ModNone},
	{event.LoadState, event.CommonMode, keymap.KeyF11, keymap.ModNone},
	{event.TakeSnapshot, event.CommonMode, keymap.KeyF12, keymap.ModNone},

	{event.TogglePauseMode, event.CommonMode, keymap.KeyPause, keymap.ModNone},
	{event.OptionsMenuMode, event.CommonMode, keymap.KeyTab, keymap.ModNone},
	{event.CmdMenuMode, event.CommonMode, keymap.KeyBackslash, keymap.ModNone},
	{event.TimeMachineMode, event.CommonMode, keymap.KeyT, keymap.ModLShift},
	{event.DebuggerMode, event.CommonMode, keymap.KeyBackquote, keymap.ModNone},
	{event.ExitMode, event.CommonMode, keymap.KeyEscape, keymap.ModNone},
	{event.Quit, event.CommonMode, keymap.KeyQ, keymap.ModLCtrl},
	{event.ReloadConsole, event.CommonMode, keymap.KeyR, keymap.ModLCtrl},
	{event.VolumeDecrease, event.CommonMode, keymap.KeyLeftBracket, keymap.ModLAlt},
	{event.VolumeIncrease, event.CommonMode, keymap.KeyRightBracket, keymap.ModLAlt},
	{event.SoundToggle, event.CommonMode, keymap.KeyS, keymap.ModLCtrl},
	{event.ToggleFullScreen, event.CommonMode, keymap.KeyReturn, keymap.ModLAlt},
	{event.ToggleGrabMouse, event.CommonMode, keymap.KeyG, keymap.ModLCtrl},
	{event.RewindPause, event.CommonMode, keymap.KeyLeft, keymap.ModLAlt},
	{event.UnwindPause, event.CommonMode, keymap.KeyRight, keymap.ModLAlt},

	// left jack joystick on the arrow keys, right jack joystick on YHGJ
	{event.JoystickZeroUp, event.JoystickMode, keymap.KeyUp, keymap.ModNone},
	{event.JoystickZeroDown, event.JoystickMode, keymap.KeyDown, keymap.ModNone},
	{event.JoystickZeroLeft, event.JoystickMode, keymap.KeyLeft, keymap.ModNone},
	{event.JoystickZeroRight, event.JoystickMode, keymap.KeyRight, keymap.ModNone},
	{event.JoystickZeroFire, event.JoystickMode, keymap.KeySpace, keymap.ModNone},
	{event.JoystickZeroFire5, event.JoystickMode, keymap.Key4, keymap.ModNone},
	{event.JoystickZeroFire9, event.JoystickMode, keymap.Key5, keymap.ModNone},
	{event.JoystickOneUp, event.JoystickMode, keymap.KeyY, keymap.ModNone},
	{event.JoystickOneDown, event.JoystickMode, keymap.KeyH, keymap.ModNone},
	{event.JoystickOneLeft, event.JoystickMode, keymap.KeyG, keymap.ModNone},
	{event.JoystickOneRight, event.JoystickMode, keymap.KeyJ, keymap.ModNone},
	{event.JoystickOneFire, event.JoystickMode, keymap.KeyF, keymap.ModNone},
	{event.JoystickOneFire5, event.JoystickMode, keymap.Key6, keymap.ModNone},
	{event.JoystickOneFire9, event.JoystickMode, keymap.Key7, keymap.ModNone},

	// paddles on the digital joystick keys
	{event.PaddleZeroDecrease, event.PaddlesMode, keymap.KeyRight, keymap.ModNone},
	{event.PaddleZeroIncrease, event.PaddlesMode, keymap.KeyLeft, keymap.ModNone},
	{event.PaddleZeroFire, event.PaddlesMode, keymap.KeySpace, keymap.ModNone},
	{event.PaddleOneDecrease, event.PaddlesMode, keymap.KeyDown, keymap.ModNone},
	{event.PaddleOneIncrease, event.PaddlesMode, keymap.KeyUp, keymap.ModNone},
	{event.PaddleOneFire, event.PaddlesMode, keymap.Key4, keymap.ModNone},
	{event.PaddleTwoDecrease, event.PaddlesMode, keymap.KeyJ, keymap.ModNone},
	{event.PaddleTwoIncrease, event.PaddlesMode, keymap.KeyG, keymap.ModNone},
	{event.PaddleTwoFire, event.PaddlesMode, keymap.KeyF, keymap.ModNone},
	{event.PaddleThreeDecrease, event.PaddlesMode, keymap.KeyH, keymap.ModNone},
	{event.PaddleThreeIncrease, event.PaddlesMode, keymap.KeyY, keymap.ModNone},
	{event.PaddleThreeFire, event.PaddlesMode, keymap.Key6, keymap.ModNone},

	// the twelve keys of each keypad
	{event.KeyboardZero1, event.KeypadMode, keymap.Key1, keymap.ModNone},
	{event.KeyboardZero2, event.KeypadMode, keymap.Key2, keymap.ModNone},
	{event.KeyboardZero3, event.KeypadMode, keymap.Key3, keymap.ModNone},
	{event.KeyboardZero4, event.KeypadMode, keymap.KeyQ, keymap.ModNone},
	{event.KeyboardZero5, event.KeypadMode, keymap.KeyW, keymap.ModNone},
	{event.KeyboardZero6, event.KeypadMode, keymap.KeyE, keymap.ModNone},
	{event.KeyboardZero7, event.KeypadMode, keymap.KeyA, keymap.ModNone},
	{event.KeyboardZero8, event.KeypadMode, keymap.KeyS, keymap.ModNone},
	{event.KeyboardZero9, event.KeypadMode, keymap.KeyD, keymap.ModNone},
	{event.KeyboardZeroStar, event.KeypadMode, keymap.KeyZ, keymap.ModNone},
	{event.KeyboardZero0, event.KeypadMode, keymap.KeyX, keymap.ModNone},
	{event.KeyboardZeroPound, event.KeypadMode, keymap.KeyC, keymap.ModNone},
	{event.KeyboardOne1, event.KeypadMode, keymap.Key8, keymap.ModNone},
	{event.KeyboardOne2, event.KeypadMode, keymap.Key9, keymap.ModNone},
	{event.KeyboardOne3, event.KeypadMode, keymap.Key0, keymap.ModNone},
	{event.KeyboardOne4, event.KeypadMode, keymap.KeyI, keymap.ModNone},
	{event.KeyboardOne5, event.KeypadMode, keymap.KeyO, keymap.ModNone},
	{event.KeyboardOne6, event.KeypadMode, keymap.KeyP, keymap.ModNone},
	{event.KeyboardOne7, event.KeypadMode, keymap.KeyK, keymap.ModNone},
	{event.KeyboardOne8, event.KeypadMode, keymap.KeyL, keymap.ModNone},
	{event.KeyboardOne9, event.KeypadMode, keymap.KeySemicolon, keymap.ModNone},
	{event.KeyboardOneStar, event.KeypadMode, keymap.KeyComma, keymap.ModNone},
	{event.KeyboardOne0, event.KeypadMode, keymap.KeyPeriod, keymap.ModNone},
	{event.KeyboardOnePound, event.KeypadMode, keymap.KeySlash, keymap.ModNone},

	// menu navigation
	{event.UIUp, event.MenuMode, keymap.KeyUp, keymap.ModNone},
	{event.UIDown, event.MenuMode, keymap.KeyDown, keymap.ModNone},
	{event.UILeft, event.MenuMode, keymap.KeyLeft, keymap.ModNone},
	{event.UIRight, event.MenuMode, keymap.KeyRight, keymap.ModNone},
	{event.UIHome, event.MenuMode, keymap.KeyHome, keymap.ModNone},
	{event.UIEnd, event.MenuMode, keymap.KeyEnd, keymap.ModNone},
	{event.UIPgUp, event.MenuMode, keymap.KeyPageUp, keymap.ModNone},
	{event.UIPgDown, event.MenuMode, keymap.KeyPageDown, keymap.ModNone},
	{event.UISelect, event.MenuMode, keymap.KeySpace, keymap.ModNone},
	{event.UIOK, event.MenuMode, keymap.KeyReturn, keymap.ModNone},
	{event.UICancel, event.MenuMode, keymap.KeyEscape, keymap.ModNone},
	{event.UINavNext, event.MenuMode, keymap.KeyTab, keymap.ModNone},
	{event.UINavPrev, event.MenuMode, keymap.KeyTab, keymap.ModLShift},
	{event.UIPrevDir, event.MenuMode, keymap.KeyBackspace, keymap.ModNone},
}
