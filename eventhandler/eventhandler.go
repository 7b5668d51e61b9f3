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

// Package eventhandler is the top of the input pipeline. Raw input is
// resolved to logical events by the keyboard and joystick handlers and
// forwarded here. The event handler expands combos, suppresses impossible
// joystick directions, intercepts application events and writes everything
// else into the console's input latch.
//
// The event handler also owns the application state. Every state change
// clears the input latch so that a held input cannot leak across a mode
// boundary.
package eventhandler

import (
	"fmt"
	"strings"

	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/input/joymap"
	"github.com/ASzc/stella/input/joystick"
	"github.com/ASzc/stella/input/keyboard"
	"github.com/ASzc/stella/input/keymap"
	"github.com/ASzc/stella/logger"
)

// AudioControl is the audio subsystem as seen by the event handler.
type AudioControl interface {
	Mute(muted bool)
	ChangeVolume(delta int)
	ToggleSound()
}

// MachineControl is the emulated machine and its state manager as seen by
// the event handler. These are the side effects of the intercepted
// application events.
type MachineControl interface {
	SaveState()
	LoadState()
	SaveAllStates()
	LoadAllStates()
	ChangeStateSlot()
	ToggleAutoSlot()
	Rewind(states int)
	Unwind(states int)
	TakeSnapshot()
	Reload()
}

// DisplayControl is the display layer as seen by the event handler.
type DisplayControl interface {
	ToggleFullScreen()
	ToggleGrabMouse()
	CycleMouseControl()
}

// Notifier is told about every application state change. The display and
// persistence layers register themselves here.
type Notifier interface {
	NotifyState(state State)
}

// EventHandler is the input dispatch state machine. Not safe for concurrent
// use, all input is expected to arrive on the polling thread.
type EventHandler struct {
	state State

	latch    *event.Latch
	keyboard *keyboard.Keyboard
	sticks   *joystick.Handler

	combos combos

	// pressing a joystick direction clears the opposite direction unless
	// this flag is set
	allowAllDirections bool

	audio     AudioControl
	machine   MachineControl
	display   DisplayControl
	notifiers []Notifier

	// a quit event was intercepted. polled by the main loop
	quitRequested bool

	// an in-progress rebind request. nothing is committed until a
	// descriptor arrives, cancellation is simply clearing these fields
	rebindActive bool
	rebindEvent  event.Type
	rebindMode   event.Mode
}

// NewEventHandler is the preferred method of initialisation for the
// EventHandler type.
func NewEventHandler(latch *event.Latch, kb *keyboard.Keyboard, sticks *joystick.Handler) *EventHandler {
	h := &EventHandler{
		state:    StateNone,
		latch:    latch,
		keyboard: kb,
		sticks:   sticks,
	}
	h.combos.reset()
	return h
}

// SetAudioControl attaches the audio subsystem.
func (h *EventHandler) SetAudioControl(audio AudioControl) {
	h.audio = audio
}

// SetMachineControl attaches the emulated machine.
func (h *EventHandler) SetMachineControl(machine MachineControl) {
	h.machine = machine
}

// SetDisplayControl attaches the display layer.
func (h *EventHandler) SetDisplayControl(display DisplayControl) {
	h.display = display
}

// AddNotifier registers a collaborator interested in state changes.
func (h *EventHandler) AddNotifier(n Notifier) {
	h.notifiers = append(h.notifiers, n)
}

// SetAllowAllDirections controls opposite direction suppression.
func (h *EventHandler) SetAllowAllDirections(allow bool) {
	h.allowAllDirections = allow
}

// State returns the current application state.
func (h *EventHandler) State() State {
	return h.state
}

// SetState changes the application state. The input latch is cleared, audio
// is muted outside of the emulation state and every registered notifier is
// told.
func (h *EventHandler) SetState(state State) {
	if state == h.state {
		return
	}

	h.state = state
	h.latch.Clear()

	if h.audio != nil {
		h.audio.Mute(state != StateEmulation)
	}

	for _, n := range h.notifiers {
		n.NotifyState(state)
	}

	logger.Logf("eventhandler", "state: %s", state)
}

// InputMode returns the binding mode raw input should be resolved in for
// the current application state.
func (h *EventHandler) InputMode() event.Mode {
	if h.state.overlay() {
		return event.MenuMode
	}
	return event.EmulationMode
}

// QuitRequested returns true once a quit event has been intercepted.
func (h *EventHandler) QuitRequested() bool {
	return h.quitRequested
}

// opposite directions of the two virtual joysticks.
var oppositeDir = map[event.Type]event.Type{
	event.JoystickZeroUp:    event.JoystickZeroDown,
	event.JoystickZeroDown:  event.JoystickZeroUp,
	event.JoystickZeroLeft:  event.JoystickZeroRight,
	event.JoystickZeroRight: event.JoystickZeroLeft,
	event.JoystickOneUp:     event.JoystickOneDown,
	event.JoystickOneDown:   event.JoystickOneUp,
	event.JoystickOneLeft:   event.JoystickOneRight,
	event.JoystickOneRight:  event.JoystickOneLeft,
}

// HandleEvent is the dispatch entry point for resolved logical events. It
// satisfies the event.Dispatch type.
func (h *EventHandler) HandleEvent(ev event.Type, value int32, repeated bool) {
	if ev == event.NoType {
		return
	}

	// combo events expand to their slot's sequence. plain recursion, the
	// sub events are never combos themselves so the depth is bounded
	if ev.IsCombo() {
		for _, sub := range h.combos.slot(ev.ComboSlot()) {
			if sub != event.NoType && !sub.IsCombo() {
				h.HandleEvent(sub, value, repeated)
			}
		}
		return
	}

	pressed := value != 0

	// intercepted application events never reach the latch
	if h.intercept(ev, pressed) {
		return
	}

	// a real joystick cannot report opposite directions at once
	if pressed && !h.allowAllDirections {
		if opp, ok := oppositeDir[ev]; ok {
			h.latch.Set(opp, 0)
		}
	}

	// repeat-while-held notifications never touch the latch. the latch
	// already holds the pressed value
	if !repeated {
		h.latch.Set(ev, value)
	}
}

// Dispatch returns the dispatch function input handlers forward resolved
// events to.
func (h *EventHandler) Dispatch() event.Dispatch {
	return h.HandleEvent
}

// intercept handles the application events. Returns true if the event was
// intercepted. Interception happens on the press transition only, releases
// of intercepted events are swallowed.
func (h *EventHandler) intercept(ev event.Type, pressed bool) bool {
	switch ev {
	case event.Quit:
		if pressed {
			h.quitRequested = true
		}

	case event.ReloadConsole:
		if pressed && h.machine != nil {
			h.machine.Reload()
		}

	case event.VolumeDecrease:
		if pressed && h.audio != nil {
			h.audio.ChangeVolume(-1)
		}

	case event.VolumeIncrease:
		if pressed && h.audio != nil {
			h.audio.ChangeVolume(1)
		}

	case event.SoundToggle:
		if pressed && h.audio != nil {
			h.audio.ToggleSound()
		}

	case event.SaveState:
		if pressed && h.machine != nil {
			h.machine.SaveState()
		}

	case event.LoadState:
		if pressed && h.machine != nil {
			h.machine.LoadState()
		}

	case event.SaveAllStates:
		if pressed && h.machine != nil {
			h.machine.SaveAllStates()
		}

	case event.LoadAllStates:
		if pressed && h.machine != nil {
			h.machine.LoadAllStates()
		}

	case event.ChangeState:
		if pressed && h.machine != nil {
			h.machine.ChangeStateSlot()
		}

	case event.ToggleAutoSlot:
		if pressed && h.machine != nil {
			h.machine.ToggleAutoSlot()
		}

	case event.TakeSnapshot:
		if pressed && h.machine != nil {
			h.machine.TakeSnapshot()
		}

	case event.RewindPause:
		if pressed {
			if h.machine != nil {
				h.machine.Rewind(1)
			}
			h.SetState(StatePause)
		}

	case event.UnwindPause:
		if pressed {
			if h.machine != nil {
				h.machine.Unwind(1)
			}
			h.SetState(StatePause)
		}

	case event.Rewind1Menu, event.Rewind10Menu, event.RewindAllMenu:
		if pressed {
			if h.machine != nil {
				h.machine.Rewind(rewindAmount(ev))
			}
			h.SetState(StateTimeMachine)
		}

	case event.Unwind1Menu, event.Unwind10Menu, event.UnwindAllMenu:
		if pressed {
			if h.machine != nil {
				h.machine.Unwind(rewindAmount(ev))
			}
			h.SetState(StateTimeMachine)
		}

	case event.TogglePauseMode:
		if pressed {
			if h.state == StatePause {
				h.SetState(StateEmulation)
			} else if h.state == StateEmulation {
				h.SetState(StatePause)
			}
		}

	case event.StartPauseMode:
		if pressed {
			h.SetState(StatePause)
		}

	case event.OptionsMenuMode:
		if pressed {
			h.SetState(StateOptionsMenu)
		}

	case event.CmdMenuMode:
		if pressed {
			if h.state == StateCmdMenu {
				h.SetState(StateEmulation)
			} else {
				h.SetState(StateCmdMenu)
			}
		}

	case event.TimeMachineMode, event.ToggleTimeMachine:
		if pressed {
			if h.state == StateTimeMachine {
				h.SetState(StateEmulation)
			} else {
				h.SetState(StateTimeMachine)
			}
		}

	case event.DebuggerMode:
		if pressed {
			if h.state == StateDebugger {
				h.SetState(StateEmulation)
			} else {
				h.SetState(StateDebugger)
			}
		}

	case event.ExitMode:
		if pressed {
			h.exitMode()
		}

	case event.ToggleFullScreen:
		if pressed && h.display != nil {
			h.display.ToggleFullScreen()
		}

	case event.ToggleGrabMouse:
		if pressed && h.display != nil {
			h.display.ToggleGrabMouse()
		}

	case event.HandleMouseControl:
		if pressed && h.display != nil {
			h.display.CycleMouseControl()
		}

	default:
		return false
	}

	return true
}

func rewindAmount(ev event.Type) int {
	switch ev {
	case event.Rewind10Menu, event.Unwind10Menu:
		return 10
	case event.RewindAllMenu, event.UnwindAllMenu:
		// large enough to reach the end of any rewind history
		return 1 << 30
	}
	return 1
}

// exitMode leaves the current state for its natural parent.
func (h *EventHandler) exitMode() {
	switch h.state {
	case StateOptionsMenu, StateCmdMenu, StateTimeMachine, StateDebugger, StatePause:
		h.SetState(StateEmulation)
	case StateEmulation:
		h.SetState(StateLauncher)
	}
}

// BeginRebind starts a rebind flow for the event in the mode. The next
// descriptor offered through RebindKey or RebindJoy is bound. Nothing is
// committed until then.
func (h *EventHandler) BeginRebind(ev event.Type, mode event.Mode) {
	h.rebindActive = true
	h.rebindEvent = ev
	h.rebindMode = mode
}

// CancelRebind abandons an in-progress rebind flow.
func (h *EventHandler) CancelRebind() {
	h.rebindActive = false
}

// Rebinding returns true while a rebind flow is in progress.
func (h *EventHandler) Rebinding() bool {
	return h.rebindActive
}

// RebindKey completes an in-progress rebind flow with a key descriptor.
// Returns false if no rebind is in progress.
func (h *EventHandler) RebindKey(key keymap.Key, mod keymap.Mod) bool {
	if !h.rebindActive {
		return false
	}
	h.keyboard.KeyMap().Add(h.rebindEvent, h.rebindMode, key, mod)

	// the emulation mode table is derived from the controller modes, so a
	// rebind into one of them must be folded in straight away
	if h.rebindMode != event.EmulationMode {
		h.keyboard.RefreshEmulationMappings()
	}

	h.rebindActive = false
	return true
}

// RebindJoy completes an in-progress rebind flow with a joystick descriptor
// on the device. The mode of the descriptor is overridden by the mode of the
// rebind flow. Returns false if no rebind is in progress or the device is
// unknown.
func (h *EventHandler) RebindJoy(id int, m joymap.Mapping) bool {
	if !h.rebindActive {
		return false
	}
	j := h.sticks.Get(id)
	if j == nil {
		return false
	}
	m.Mode = h.rebindMode
	j.JoyMap().Add(h.rebindEvent, m)

	if h.rebindMode != event.EmulationMode {
		h.sticks.RefreshEmulationMappings()
	}

	h.rebindActive = false
	return true
}

// MappingDescription returns the presentation string of every physical
// input bound to the event in the mode, across the keyboard and every
// connected joystick. Recomputed on every call, the result reflects the
// devices connected right now.
func (h *EventHandler) MappingDescription(ev event.Type, mode event.Mode) string {
	parts := make([]string, 0)

	if d := h.keyboard.KeyMap().Description(ev, mode); d != "" {
		parts = append(parts, d)
	}

	for _, j := range h.sticks.Sticks() {
		if d := j.JoyMap().Description(ev, mode); d != "" {
			parts = append(parts, fmt.Sprintf("Joy%d %s", j.ID, d))
		}
	}

	return strings.Join(parts, ", ")
}

// ActionList returns the remappable actions for the mode, for UI
// enumeration.
func (h *EventHandler) ActionList(mode event.Mode) []event.Action {
	return event.Actions(mode)
}
