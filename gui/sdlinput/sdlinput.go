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

// Package sdlinput connects the SDL event queue to the input pipeline.
// Keyboard events and physical joystick events are translated into the
// platform independent representation and forwarded to the event handler.
// Joystick hot-plugging is handled here.
package sdlinput

import (
	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/eventhandler"
	"github.com/ASzc/stella/input/joymap"
	"github.com/ASzc/stella/input/joystick"
	"github.com/ASzc/stella/input/keyboard"
	"github.com/ASzc/stella/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// axis movement smaller than this is not considered a rebind gesture
const rebindThreshold = 16384

// Input services the SDL event queue and feeds the event handler.
type Input struct {
	handler  *eventhandler.EventHandler
	keyboard *keyboard.Keyboard
	sticks   *joystick.Handler

	// open SDL joysticks keyed by SDL instance ID. the int is our own
	// runtime ID as assigned by the joystick handler
	opened map[sdl.JoystickID]*openStick
}

type openStick struct {
	joy *sdl.Joystick
	id  int
}

// NewInput is the preferred method of initialisation for the Input type.
// The keyboard and joystick handler must be the same instances given to the
// event handler.
func NewInput(handler *eventhandler.EventHandler, kb *keyboard.Keyboard, sticks *joystick.Handler) (*Input, error) {
	inp := &Input{
		handler:  handler,
		keyboard: kb,
		sticks:   sticks,
		opened:   make(map[sdl.JoystickID]*openStick),
	}

	if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK); err != nil {
		return nil, err
	}
	sdl.JoystickEventState(sdl.ENABLE)

	return inp, nil
}

// Destroy closes every open joystick. The Input instance is not usable
// after this.
func (inp *Input) Destroy() {
	for _, s := range inp.opened {
		s.joy.Close()
	}
	inp.opened = make(map[sdl.JoystickID]*openStick)
	sdl.QuitSubSystem(sdl.INIT_JOYSTICK)
}

// Service drains the SDL event queue once. It should be called often, at
// least once per frame.
func (inp *Input) Service() {
	empty := false
	for !empty {
		ev := sdl.WaitEventTimeout(1)
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			inp.handler.HandleEvent(event.Quit, 1, false)

		case *sdl.KeyboardEvent:
			inp.serviceKeyboard(ev)

		case *sdl.JoyDeviceAddedEvent:
			inp.addStick(int(ev.Which))

		case *sdl.JoyDeviceRemovedEvent:
			inp.removeStick(ev.Which)

		case *sdl.JoyButtonEvent:
			inp.serviceButton(ev)

		case *sdl.JoyAxisEvent:
			inp.serviceAxis(ev)

		case *sdl.JoyHatEvent:
			inp.serviceHat(ev)

		case nil:
			empty = true
		}
	}
}

func (inp *Input) serviceKeyboard(ev *sdl.KeyboardEvent) {
	key := translateKey(ev.Keysym.Sym)
	mod := translateMod(sdl.GetModState())
	pressed := ev.Type == sdl.KEYDOWN
	repeated := ev.Repeat != 0

	// a pending rebind consumes the next key press
	if inp.handler.Rebinding() {
		if pressed && !repeated {
			inp.handler.RebindKey(key, mod)
		}
		return
	}

	inp.keyboard.HandleKey(inp.handler.InputMode(), key, mod, pressed, repeated, inp.handler.Dispatch())
}

func (inp *Input) addStick(index int) {
	joy := sdl.JoystickOpen(index)
	if joy == nil {
		logger.Logf("sdlinput", "cannot open joystick at index %d", index)
		return
	}

	id := inp.sticks.Add(joy.Name(), joy.NumAxes(), joy.NumButtons(), joy.NumHats())
	if id < 0 {
		joy.Close()
		return
	}

	inp.opened[joy.InstanceID()] = &openStick{joy: joy, id: id}
}

func (inp *Input) removeStick(instance sdl.JoystickID) {
	s, ok := inp.opened[instance]
	if !ok {
		return
	}

	if err := inp.sticks.Remove(s.id); err != nil {
		logger.Log("sdlinput", err.Error())
	}
	s.joy.Close()
	delete(inp.opened, instance)
}

func (inp *Input) serviceButton(ev *sdl.JoyButtonEvent) {
	s, ok := inp.opened[ev.Which]
	if !ok {
		return
	}

	pressed := ev.State == sdl.PRESSED

	if inp.handler.Rebinding() {
		if pressed {
			inp.handler.RebindJoy(s.id, joymap.ButtonMapping(inp.handler.InputMode(), int(ev.Button)))
		}
		return
	}

	inp.sticks.HandleButtonEvent(s.id, inp.handler.InputMode(), int(ev.Button), pressed, inp.handler.Dispatch())
}

func (inp *Input) serviceAxis(ev *sdl.JoyAxisEvent) {
	s, ok := inp.opened[ev.Which]
	if !ok {
		return
	}

	if inp.handler.Rebinding() {
		if ev.Value > rebindThreshold {
			inp.handler.RebindJoy(s.id, joymap.AxisMapping(inp.handler.InputMode(), int(ev.Axis), joymap.AxisPos))
		} else if ev.Value < -rebindThreshold {
			inp.handler.RebindJoy(s.id, joymap.AxisMapping(inp.handler.InputMode(), int(ev.Axis), joymap.AxisNeg))
		}
		return
	}

	inp.sticks.HandleAxisEvent(s.id, inp.handler.InputMode(), int(ev.Axis), ev.Value, inp.handler.Dispatch())
}

func (inp *Input) serviceHat(ev *sdl.JoyHatEvent) {
	s, ok := inp.opened[ev.Which]
	if !ok {
		return
	}

	dir := translateHat(ev.Value)

	if inp.handler.Rebinding() {
		if dir != joymap.HatCenter {
			inp.handler.RebindJoy(s.id, joymap.HatMapping(inp.handler.InputMode(), int(ev.Hat), dir))
		}
		return
	}

	inp.sticks.HandleHatEvent(s.id, inp.handler.InputMode(), int(ev.Hat), dir, inp.handler.Dispatch())
}

// translateHat reduces the SDL hat bitmask to a single direction. Diagonal
// positions resolve to the vertical component.
func translateHat(value uint8) joymap.HatDir {
	switch {
	case value&sdl.HAT_UP != 0:
		return joymap.HatUp
	case value&sdl.HAT_DOWN != 0:
		return joymap.HatDown
	case value&sdl.HAT_LEFT != 0:
		return joymap.HatLeft
	case value&sdl.HAT_RIGHT != 0:
		return joymap.HatRight
	}
	return joymap.HatCenter
}
