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

import (
	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/prefs"
	"github.com/ASzc/stella/resources"
)

// the modes whose keyboard bindings are persisted. the emulation mode table
// is derived and never saved.
var persistedKeyModes = map[string]event.Mode{
	"input.keymap.menu":     event.MenuMode,
	"input.keymap.joystick": event.JoystickMode,
	"input.keymap.paddles":  event.PaddlesMode,
	"input.keymap.keypad":   event.KeypadMode,
	"input.keymap.common":   event.CommonMode,
}

// Preferences ties the input configuration to the preferences file on disk.
type Preferences struct {
	dsk *prefs.Disk

	handler *EventHandler

	AllowAllDirections prefs.Bool
	ModEnabled         prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Registers every input preference against the
// preferences file but does not load anything.
func NewPreferences(handler *EventHandler) (*Preferences, error) {
	p := &Preferences{handler: handler}

	pth, err := resources.JoinPath("preferences")
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("input.allowalldirections", &p.AllowAllDirections); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("input.modenabled", &p.ModEnabled); err != nil {
		return nil, err
	}

	err = p.dsk.Add("input.combos", prefs.NewGeneric(
		func(v prefs.Value) error {
			handler.LoadCombos(v.(string))
			return nil
		},
		func() prefs.Value {
			return handler.SaveCombos()
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("input.joystick.database", prefs.NewGeneric(
		func(v prefs.Value) error {
			handler.sticks.ImportDatabase(v.(string))
			return nil
		},
		func() prefs.Value {
			return handler.sticks.ExportDatabase()
		},
	))
	if err != nil {
		return nil, err
	}

	for key, mode := range persistedKeyModes {
		mode := mode
		err = p.dsk.Add(key, prefs.NewGeneric(
			func(v prefs.Value) error {
				handler.keyboard.KeyMap().LoadMapping(mode, v.(string))
				return nil
			},
			func() prefs.Value {
				return handler.keyboard.KeyMap().SaveMapping(mode)
			},
		))
		if err != nil {
			return nil, err
		}
	}

	// default to true so that a missing preferences file behaves like the
	// original hardware
	if err := p.ModEnabled.Set(true); err != nil {
		return nil, err
	}

	return p, nil
}

// Load reads the preferences file and applies the values to the input
// pipeline. Bindings loaded from disk replace defaults. Defaults are then
// reinstalled for any event the file did not bind.
func (p *Preferences) Load() error {
	if err := p.dsk.Load(); err != nil {
		return err
	}

	p.handler.SetAllowAllDirections(p.AllowAllDirections.Get().(bool))
	p.handler.keyboard.KeyMap().SetModEnabled(p.ModEnabled.Get().(bool))
	p.handler.keyboard.InstallDefaultMappings()

	return nil
}

// Save writes the live input configuration to the preferences file.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
