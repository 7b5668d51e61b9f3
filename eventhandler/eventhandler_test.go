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

package eventhandler_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/eventhandler"
	"github.com/ASzc/stella/input/joymap"
	"github.com/ASzc/stella/input/joystick"
	"github.com/ASzc/stella/input/keyboard"
	"github.com/ASzc/stella/input/keymap"
	"github.com/ASzc/stella/test"
)

func newHandler() (*eventhandler.EventHandler, *event.Latch) {
	latch := &event.Latch{}
	h := eventhandler.NewEventHandler(latch, keyboard.NewKeyboard(), joystick.NewHandler())
	return h, latch
}

func TestLatchWrite(t *testing.T) {
	h, latch := newHandler()

	h.HandleEvent(event.JoystickZeroFire, 1, false)
	test.Equate(t, latch.Get(event.JoystickZeroFire), int32(1))

	h.HandleEvent(event.JoystickZeroFire, 0, false)
	test.Equate(t, latch.Get(event.JoystickZeroFire), int32(0))
}

func TestOppositeDirectionSuppression(t *testing.T) {
	h, latch := newHandler()

	h.HandleEvent(event.JoystickZeroDown, 1, false)
	test.Equate(t, latch.Get(event.JoystickZeroDown), int32(1))

	// pressing up clears down in the same dispatch pass
	h.HandleEvent(event.JoystickZeroUp, 1, false)
	test.Equate(t, latch.Get(event.JoystickZeroUp), int32(1))
	test.Equate(t, latch.Get(event.JoystickZeroDown), int32(0))

	// releasing a direction does not touch the opposite
	h.HandleEvent(event.JoystickZeroUp, 0, false)
	test.Equate(t, latch.Get(event.JoystickZeroDown), int32(0))
}

func TestAllowAllDirections(t *testing.T) {
	h, latch := newHandler()
	h.SetAllowAllDirections(true)

	h.HandleEvent(event.JoystickZeroDown, 1, false)
	h.HandleEvent(event.JoystickZeroUp, 1, false)
	test.Equate(t, latch.Get(event.JoystickZeroUp), int32(1))
	test.Equate(t, latch.Get(event.JoystickZeroDown), int32(1))
}

func TestSuppressionPerStick(t *testing.T) {
	h, latch := newHandler()

	// directions of the other virtual joystick are unaffected
	h.HandleEvent(event.JoystickOneDown, 1, false)
	h.HandleEvent(event.JoystickZeroUp, 1, false)
	test.Equate(t, latch.Get(event.JoystickOneDown), int32(1))
}

func TestRepeatSuppression(t *testing.T) {
	h, latch := newHandler()

	h.HandleEvent(event.JoystickZeroFire, 1, false)
	test.Equate(t, latch.Get(event.JoystickZeroFire), int32(1))

	// a release marked as a repeat does not overwrite the latch
	h.HandleEvent(event.JoystickZeroFire, 0, true)
	test.Equate(t, latch.Get(event.JoystickZeroFire), int32(1))
}

func TestComboExpansion(t *testing.T) {
	h, latch := newHandler()

	err := h.SetCombo(0, []event.Type{
		event.ConsoleSelect,
		event.NoType,
		event.JoystickZeroFire,
	})
	test.ExpectedSuccess(t, err)

	h.HandleEvent(event.Combo1, 1, false)
	test.Equate(t, latch.Get(event.ConsoleSelect), int32(1))
	test.Equate(t, latch.Get(event.JoystickZeroFire), int32(1))

	// the release expands too
	h.HandleEvent(event.Combo1, 0, false)
	test.Equate(t, latch.Get(event.ConsoleSelect), int32(0))
	test.Equate(t, latch.Get(event.JoystickZeroFire), int32(0))
}

func TestComboCannotContainCombo(t *testing.T) {
	h, _ := newHandler()
	test.ExpectedFailure(t, h.SetCombo(0, []event.Type{event.Combo2}))
	test.ExpectedFailure(t, h.SetCombo(-1, []event.Type{event.ConsoleSelect}))
	test.ExpectedFailure(t, h.SetCombo(event.ComboSize, []event.Type{event.ConsoleSelect}))
}

func TestComboRoundTrip(t *testing.T) {
	h, _ := newHandler()

	test.ExpectedSuccess(t, h.SetCombo(3, []event.Type{event.ConsoleSelect, event.ConsoleReset}))
	saved := h.SaveCombos()

	h2, _ := newHandler()
	h2.LoadCombos(saved)

	slot := h2.Combo(3)
	test.Equate(t, int(slot[0]), int(event.ConsoleSelect))
	test.Equate(t, int(slot[1]), int(event.ConsoleReset))
	test.Equate(t, int(slot[2]), int(event.NoType))
}

func TestComboVersionMismatch(t *testing.T) {
	h, _ := newHandler()
	test.ExpectedSuccess(t, h.SetCombo(0, []event.Type{event.ConsoleSelect}))

	saved := h.SaveCombos()

	// rewrite the version tag
	fields := strings.SplitN(saved, ":", 2)
	saved = fmt.Sprintf("%d:%s", event.Version+1, fields[1])

	h.LoadCombos(saved)

	// the whole table is reset, not partially trusted
	for i := 0; i < event.ComboSize; i++ {
		for _, ev := range h.Combo(i) {
			test.Equate(t, int(ev), int(event.NoType))
		}
	}
}

func TestComboMalformedResets(t *testing.T) {
	h, _ := newHandler()
	h.LoadCombos("not a combo string")
	for _, ev := range h.Combo(0) {
		test.Equate(t, int(ev), int(event.NoType))
	}
}

func TestStateChangeClearsLatch(t *testing.T) {
	h, latch := newHandler()
	h.SetState(eventhandler.StateEmulation)

	h.HandleEvent(event.JoystickZeroFire, 1, false)
	test.Equate(t, latch.Get(event.JoystickZeroFire), int32(1))

	h.SetState(eventhandler.StatePause)
	test.Equate(t, latch.Get(event.JoystickZeroFire), int32(0))
}

func TestPauseToggle(t *testing.T) {
	h, _ := newHandler()
	h.SetState(eventhandler.StateEmulation)

	h.HandleEvent(event.TogglePauseMode, 1, false)
	test.Equate(t, int(h.State()), int(eventhandler.StatePause))
	h.HandleEvent(event.TogglePauseMode, 0, false)
	test.Equate(t, int(h.State()), int(eventhandler.StatePause))
	h.HandleEvent(event.TogglePauseMode, 1, false)
	test.Equate(t, int(h.State()), int(eventhandler.StateEmulation))
}

func TestInterceptedEventsNeverTouchLatch(t *testing.T) {
	h, latch := newHandler()
	h.SetState(eventhandler.StateEmulation)

	h.HandleEvent(event.OptionsMenuMode, 1, false)
	test.Equate(t, int(h.State()), int(eventhandler.StateOptionsMenu))
	test.Equate(t, latch.Get(event.OptionsMenuMode), int32(0))

	test.Equate(t, int(h.InputMode()), int(event.MenuMode))

	h.HandleEvent(event.ExitMode, 1, false)
	test.Equate(t, int(h.State()), int(eventhandler.StateEmulation))
	test.Equate(t, int(h.InputMode()), int(event.EmulationMode))
}

func TestQuit(t *testing.T) {
	h, _ := newHandler()
	test.Equate(t, h.QuitRequested(), false)
	h.HandleEvent(event.Quit, 1, false)
	test.Equate(t, h.QuitRequested(), true)
}

func TestRebindTakesEffectInEmulation(t *testing.T) {
	latch := &event.Latch{}
	kb := keyboard.NewKeyboard()
	sticks := joystick.NewHandler()
	h := eventhandler.NewEventHandler(latch, kb, sticks)

	kb.EnableEmulationMappings(event.JoystickMode, event.JoystickMode)
	sticks.EnableEmulationMappings(event.JoystickMode, event.JoystickMode)

	// a key rebind in a controller mode resolves in emulation mode without
	// another merge
	h.BeginRebind(event.JoystickZeroFire, event.JoystickMode)
	test.Equate(t, h.RebindKey(keymap.KeyZ, keymap.ModNone), true)
	test.Equate(t, int(kb.KeyMap().Get(event.EmulationMode, keymap.KeyZ, keymap.ModNone)),
		int(event.JoystickZeroFire))

	// same for a joystick rebind
	id := sticks.Add("Pad A", 2, 8, 1)
	h.BeginRebind(event.JoystickZeroFire, event.JoystickMode)
	test.Equate(t, h.RebindJoy(id, joymap.ButtonMapping(event.JoystickMode, 7)), true)
	test.Equate(t, int(sticks.Get(id).JoyMap().Get(joymap.ButtonMapping(event.EmulationMode, 7))),
		int(event.JoystickZeroFire))
}

// audio mute follows the application state.
type muteRecorder struct {
	muted bool
}

func (m *muteRecorder) Mute(muted bool)        { m.muted = muted }
func (m *muteRecorder) ChangeVolume(delta int) {}
func (m *muteRecorder) ToggleSound()           {}

func TestAudioMuteOnStateChange(t *testing.T) {
	h, _ := newHandler()

	m := &muteRecorder{}
	h.SetAudioControl(m)

	h.SetState(eventhandler.StatePause)
	test.Equate(t, m.muted, true)

	h.SetState(eventhandler.StateEmulation)
	test.Equate(t, m.muted, false)
}

// notifier records state changes.
type stateRecorder struct {
	states []eventhandler.State
}

func (r *stateRecorder) NotifyState(s eventhandler.State) {
	r.states = append(r.states, s)
}

func TestNotify(t *testing.T) {
	h, _ := newHandler()

	r := &stateRecorder{}
	h.AddNotifier(r)

	h.SetState(eventhandler.StateEmulation)
	h.SetState(eventhandler.StateEmulation) // no transition, no notification
	h.SetState(eventhandler.StatePause)

	test.Equate(t, len(r.states), 2)
	test.Equate(t, int(r.states[0]), int(eventhandler.StateEmulation))
	test.Equate(t, int(r.states[1]), int(eventhandler.StatePause))
}
