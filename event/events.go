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

// Package event defines the logical actions that the console and the
// application understand. Physical inputs are resolved to a Type value by the
// binding tables and dispatched by the eventhandler package.
package event

// Type is the logical action identifier. The zero value is NoType, meaning
// "no action". The numeric value of a Type is used by the serialised mapping
// and combo formats and any change to the ordering below must be accompanied
// by a bump of the Version constant.
type Type int

// Version of the event table. Stored alongside serialised combo definitions.
// Combos saved with a different version are discarded entirely.
const Version = 1

// List of defined events.
const (
	NoType Type = iota

	// console switches
	ConsoleSelect
	ConsoleReset
	ConsoleColor
	ConsoleBlackWhite
	ConsoleColorToggle
	ConsoleLeftDiffA
	ConsoleLeftDiffB
	ConsoleLeftDiffToggle
	ConsoleRightDiffA
	ConsoleRightDiffB
	ConsoleRightDiffToggle

	// left port joystick
	JoystickZeroUp
	JoystickZeroDown
	JoystickZeroLeft
	JoystickZeroRight
	JoystickZeroFire
	JoystickZeroFire5
	JoystickZeroFire9

	// right port joystick
	JoystickOneUp
	JoystickOneDown
	JoystickOneLeft
	JoystickOneRight
	JoystickOneFire
	JoystickOneFire5
	JoystickOneFire9

	// paddles. analog events carry the raw axis value, the
	// decrease/increase events are the digital equivalents
	PaddleZeroAnalog
	PaddleZeroDecrease
	PaddleZeroIncrease
	PaddleZeroFire
	PaddleOneAnalog
	PaddleOneDecrease
	PaddleOneIncrease
	PaddleOneFire
	PaddleTwoAnalog
	PaddleTwoDecrease
	PaddleTwoIncrease
	PaddleTwoFire
	PaddleThreeAnalog
	PaddleThreeDecrease
	PaddleThreeIncrease
	PaddleThreeFire

	// left port keypad
	KeyboardZero1
	KeyboardZero2
	KeyboardZero3
	KeyboardZero4
	KeyboardZero5
	KeyboardZero6
	KeyboardZero7
	KeyboardZero8
	KeyboardZero9
	KeyboardZeroStar
	KeyboardZero0
	KeyboardZeroPound

	// right port keypad
	KeyboardOne1
	KeyboardOne2
	KeyboardOne3
	KeyboardOne4
	KeyboardOne5
	KeyboardOne6
	KeyboardOne7
	KeyboardOne8
	KeyboardOne9
	KeyboardOneStar
	KeyboardOne0
	KeyboardOnePound

	// mouse values are absolute rather than latched on/off
	MouseAxisXValue
	MouseAxisYValue
	MouseButtonLeftValue
	MouseButtonRightValue

	// application events. these are intercepted by the dispatcher and never
	// reach the console's input latch
	Quit
	ReloadConsole
	VolumeDecrease
	VolumeIncrease
	SoundToggle
	SaveState
	LoadState
	SaveAllStates
	LoadAllStates
	ToggleAutoSlot
	ChangeState
	TakeSnapshot
	RewindPause
	UnwindPause
	Rewind1Menu
	Rewind10Menu
	RewindAllMenu
	Unwind1Menu
	Unwind10Menu
	UnwindAllMenu
	TogglePauseMode
	StartPauseMode
	OptionsMenuMode
	CmdMenuMode
	TimeMachineMode
	ToggleTimeMachine
	DebuggerMode
	ExitMode
	ToggleFullScreen
	ToggleGrabMouse
	HandleMouseControl

	// user interface navigation
	UIUp
	UIDown
	UILeft
	UIRight
	UIHome
	UIEnd
	UIPgUp
	UIPgDown
	UISelect
	UINavPrev
	UINavNext
	UIOK
	UICancel
	UITabPrev
	UITabNext
	UIPrevDir

	// combo events expand to a fixed sequence of other events
	Combo1
	Combo2
	Combo3
	Combo4
	Combo5
	Combo6
	Combo7
	Combo8
	Combo9
	Combo10
	Combo11
	Combo12
	Combo13
	Combo14
	Combo15
	Combo16

	// LastType is not an event. it marks the extent of the event table
	LastType
)

// ComboSize is the number of combo slots.
const ComboSize = int(Combo16 - Combo1 + 1)

// EventsPerCombo is the maximum number of events a combo slot can trigger.
const EventsPerCombo = 8

// IsCombo returns true if the event is one of the combo slot events.
func (ev Type) IsCombo() bool {
	return ev >= Combo1 && ev <= Combo16
}

// ComboSlot returns the combo slot index for the event, or -1 if the event is
// not a combo event.
func (ev Type) ComboSlot() int {
	if !ev.IsCombo() {
		return -1
	}
	return int(ev - Combo1)
}
