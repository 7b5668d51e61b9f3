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

package eventhandler

// State is the application state. It decides where raw input is routed and
// whether the console is running.
type State int

// List of application states.
const (
	StateNone State = iota
	StateEmulation
	StatePause
	StateLauncher
	StateOptionsMenu
	StateCmdMenu
	StateTimeMachine
	StateDebugger
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateEmulation:
		return "emulation"
	case StatePause:
		return "pause"
	case StateLauncher:
		return "launcher"
	case StateOptionsMenu:
		return "options menu"
	case StateCmdMenu:
		return "command menu"
	case StateTimeMachine:
		return "time machine"
	case StateDebugger:
		return "debugger"
	}
	return "unknown"
}

// overlay returns true if the state presents a UI overlay that consumes
// input in menu mode.
func (s State) overlay() bool {
	switch s {
	case StateLauncher, StateOptionsMenu, StateCmdMenu, StateTimeMachine, StateDebugger:
		return true
	}
	return false
}
