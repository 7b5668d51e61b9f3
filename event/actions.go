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

// Action pairs an event with its human readable name. The action lists below
// enumerate the events a user can remap, in the order a configuration screen
// should present them.
type Action struct {
	Event Type
	Name  string
}

// EmulationActions is the ordered list of remappable events in emulation
// mode.
var EmulationActions = []Action{
	{ConsoleSelect, "Select"},
	{ConsoleReset, "Reset"},
	{ConsoleColor, "Color TV"},
	{ConsoleBlackWhite, "Black & White TV"},
	{ConsoleColorToggle, "Swap Color / B&W TV"},
	{ConsoleLeftDiffA, "P0 Difficulty A"},
	{ConsoleLeftDiffB, "P0 Difficulty B"},
	{ConsoleLeftDiffToggle, "P0 Swap Difficulty"},
	{ConsoleRightDiffA, "P1 Difficulty A"},
	{ConsoleRightDiffB, "P1 Difficulty B"},
	{ConsoleRightDiffToggle, "P1 Swap Difficulty"},

	{JoystickZeroUp, "P0 Joystick Up"},
	{JoystickZeroDown, "P0 Joystick Down"},
	{JoystickZeroLeft, "P0 Joystick Left"},
	{JoystickZeroRight, "P0 Joystick Right"},
	{JoystickZeroFire, "P0 Joystick Fire"},
	{JoystickZeroFire5, "P0 Booster Top Booster Button"},
	{JoystickZeroFire9, "P0 Booster Handle Grip Trigger"},
	{JoystickOneUp, "P1 Joystick Up"},
	{JoystickOneDown, "P1 Joystick Down"},
	{JoystickOneLeft, "P1 Joystick Left"},
	{JoystickOneRight, "P1 Joystick Right"},
	{JoystickOneFire, "P1 Joystick Fire"},
	{JoystickOneFire5, "P1 Booster Top Booster Button"},
	{JoystickOneFire9, "P1 Booster Handle Grip Trigger"},

	{PaddleZeroAnalog, "Paddle 0 Analog"},
	{PaddleZeroDecrease, "Paddle 0 Decrease"},
	{PaddleZeroIncrease, "Paddle 0 Increase"},
	{PaddleZeroFire, "Paddle 0 Fire"},
	{PaddleOneAnalog, "Paddle 1 Analog"},
	{PaddleOneDecrease, "Paddle 1 Decrease"},
	{PaddleOneIncrease, "Paddle 1 Increase"},
	{PaddleOneFire, "Paddle 1 Fire"},
	{PaddleTwoAnalog, "Paddle 2 Analog"},
	{PaddleTwoDecrease, "Paddle 2 Decrease"},
	{PaddleTwoIncrease, "Paddle 2 Increase"},
	{PaddleTwoFire, "Paddle 2 Fire"},
	{PaddleThreeAnalog, "Paddle 3 Analog"},
	{PaddleThreeDecrease, "Paddle 3 Decrease"},
	{PaddleThreeIncrease, "Paddle 3 Increase"},
	{PaddleThreeFire, "Paddle 3 Fire"},

	{KeyboardZero1, "P0 Keyboard 1"},
	{KeyboardZero2, "P0 Keyboard 2"},
	{KeyboardZero3, "P0 Keyboard 3"},
	{KeyboardZero4, "P0 Keyboard 4"},
	{KeyboardZero5, "P0 Keyboard 5"},
	{KeyboardZero6, "P0 Keyboard 6"},
	{KeyboardZero7, "P0 Keyboard 7"},
	{KeyboardZero8, "P0 Keyboard 8"},
	{KeyboardZero9, "P0 Keyboard 9"},
	{KeyboardZeroStar, "P0 Keyboard *"},
	{KeyboardZero0, "P0 Keyboard 0"},
	{KeyboardZeroPound, "P0 Keyboard #"},
	{KeyboardOne1, "P1 Keyboard 1"},
	{KeyboardOne2, "P1 Keyboard 2"},
	{KeyboardOne3, "P1 Keyboard 3"},
	{KeyboardOne4, "P1 Keyboard 4"},
	{KeyboardOne5, "P1 Keyboard 5"},
	{KeyboardOne6, "P1 Keyboard 6"},
	{KeyboardOne7, "P1 Keyboard 7"},
	{KeyboardOne8, "P1 Keyboard 8"},
	{KeyboardOne9, "P1 Keyboard 9"},
	{KeyboardOneStar, "P1 Keyboard *"},
	{KeyboardOne0, "P1 Keyboard 0"},
	{KeyboardOnePound, "P1 Keyboard #"},

	{Quit, "Quit"},
	{ReloadConsole, "Reload current ROM"},
	{VolumeDecrease, "Decrease volume"},
	{VolumeIncrease, "Increase volume"},
	{SoundToggle, "Toggle sound"},
	{SaveState, "Save state"},
	{LoadState, "Load state"},
	{SaveAllStates, "Save all TM states"},
	{LoadAllStates, "Load saved TM states"},
	{ToggleAutoSlot, "Toggle automatic state slot change"},
	{ChangeState, "Change state slot"},
	{TakeSnapshot, "Snapshot"},
	{RewindPause, "Rewind one state & enter pause"},
	{UnwindPause, "Unwind one state & enter pause"},
	{TogglePauseMode, "Toggle pause mode"},
	{StartPauseMode, "Enter pause mode"},
	{OptionsMenuMode, "Enter options menu UI"},
	{CmdMenuMode, "Toggle command menu UI"},
	{TimeMachineMode, "Toggle time machine UI"},
	{ToggleTimeMachine, "Toggle time machine"},
	{DebuggerMode, "Toggle debugger mode"},
	{ExitMode, "Exit current mode"},
	{ToggleFullScreen, "Toggle fullscreen"},
	{ToggleGrabMouse, "Toggle grab mouse"},
	{HandleMouseControl, "Switch mouse emulation modes"},

	{Combo1, "Combo 1"},
	{Combo2, "Combo 2"},
	{Combo3, "Combo 3"},
	{Combo4, "Combo 4"},
	{Combo5, "Combo 5"},
	{Combo6, "Combo 6"},
	{Combo7, "Combo 7"},
	{Combo8, "Combo 8"},
	{Combo9, "Combo 9"},
	{Combo10, "Combo 10"},
	{Combo11, "Combo 11"},
	{Combo12, "Combo 12"},
	{Combo13, "Combo 13"},
	{Combo14, "Combo 14"},
	{Combo15, "Combo 15"},
	{Combo16, "Combo 16"},
}

// MenuActions is the ordered list of remappable events in menu mode.
var MenuActions = []Action{
	{UIUp, "Move Up"},
	{UIDown, "Move Down"},
	{UILeft, "Move Left"},
	{UIRight, "Move Right"},
	{UIHome, "Home"},
	{UIEnd, "End"},
	{UIPgUp, "Page Up"},
	{UIPgDown, "Page Down"},
	{UISelect, "Select item"},
	{UINavPrev, "Previous object"},
	{UINavNext, "Next object"},
	{UIOK, "OK"},
	{UICancel, "Cancel"},
	{UITabPrev, "Previous tab"},
	{UITabNext, "Next tab"},
	{UIPrevDir, "Parent directory"},
}

// Name returns the human readable name of the event, taken from the action
// lists. Events that do not appear in either list return the empty string.
func Name(ev Type) string {
	for _, a := range EmulationActions {
		if a.Event == ev {
			return a.Name
		}
	}
	for _, a := range MenuActions {
		if a.Event == ev {
			return a.Name
		}
	}
	return ""
}

// Actions returns the action list for the mode. EmulationActions is returned
// for every mode other than MenuMode, matching how controller modes merge
// into emulation mode.
func Actions(mode Mode) []Action {
	if mode == MenuMode {
		return MenuActions
	}
	return EmulationActions
}

// ActionAt returns the numbered action in the mode's action list. NoType
// action for an index out of range.
func ActionAt(mode Mode, idx int) Action {
	actions := Actions(mode)
	if idx < 0 || idx >= len(actions) {
		return Action{Event: NoType}
	}
	return actions[idx]
}

// ActionIndex returns the position of the event in the mode's action list,
// or -1 if the event does not appear.
func ActionIndex(mode Mode, ev Type) int {
	for i, a := range Actions(mode) {
		if a.Event == ev {
			return i
		}
	}
	return -1
}
