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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ASzc/stella/curated"
	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/input/joymap"
	"github.com/ASzc/stella/logger"
	"github.com/ASzc/stella/ports"
)

// the modes whose bindings are persisted per device. the emulation mode
// table is derived from these on every EnableEmulationMappings call and is
// never saved.
var persistedModes = []event.Mode{
	event.MenuMode,
	event.JoystickMode,
	event.PaddlesMode,
	event.KeypadMode,
	event.CommonMode,
}

// Handler tracks connected devices and remembers the bindings of
// disconnected devices by name.
type Handler struct {
	sticks map[int]*PhysicalJoystick

	// name keyed serialised bindings of devices that are not currently
	// connected, or that have been connected at some point
	database map[string]string

	// the controller kind most recently installed for each jack and the
	// controller modes most recently enabled for emulation. devices can
	// connect at any time, so both are reapplied on every Add
	kinds     map[ports.Jack]ports.Controller
	leftMode  event.Mode
	rightMode event.Mode
}

// NewHandler is the preferred method of initialisation for the Handler
// type.
func NewHandler() *Handler {
	return &Handler{
		sticks:    make(map[int]*PhysicalJoystick),
		database:  make(map[string]string),
		kinds:     make(map[ports.Jack]ports.Controller),
		leftMode:  event.JoystickMode,
		rightMode: event.JoystickMode,
	}
}

// Add registers a newly connected device and returns its runtime ID, the
// lowest integer not currently in use. A device with a name seen before
// gets its remembered bindings back, otherwise the default mappings for a
// generic gamepad are installed. Returns -1 on failure.
func (h *Handler) Add(name string, axes int, buttons int, hats int) int {
	if name == "" {
		return -1
	}

	id := 0
	for {
		if _, ok := h.sticks[id]; !ok {
			break
		}
		id++
	}

	j := newPhysicalJoystick(name, id, axes, buttons, hats)

	if saved, ok := h.database[name]; ok {
		h.importStick(j, saved)
		logger.Logf("joystick", "%s connected, bindings restored", j)
	} else {
		logger.Logf("joystick", "%s connected, default bindings installed", j)
	}

	// the device may connect long after the cartridge's controllers have
	// been decided. install the defaults for the jack's controller kind
	// (filling the gaps of any restored bindings) and rebuild the derived
	// emulation mode table
	h.installDefaults(j)
	h.enableEmulation(j)

	h.sticks[id] = j

	return id
}

// Remove detaches a connected device. Its bindings are remembered and
// restored if a device with the same name connects again.
func (h *Handler) Remove(id int) error {
	j, ok := h.sticks[id]
	if !ok {
		return curated.Errorf("joystick: no device with id %d", id)
	}

	h.database[j.Name] = h.exportStick(j)
	delete(h.sticks, id)
	logger.Logf("joystick", "%s disconnected", j)

	return nil
}

// Forget purges the remembered bindings for a device name. Fails if a
// device with that name is currently connected.
func (h *Handler) Forget(name string) error {
	for _, j := range h.sticks {
		if j.Name == name {
			return curated.Errorf("joystick: %s is connected", name)
		}
	}

	if _, ok := h.database[name]; !ok {
		return curated.Errorf("joystick: %s is not known", name)
	}

	delete(h.database, name)

	return nil
}

// Get returns the connected device with the runtime ID, or nil.
func (h *Handler) Get(id int) *PhysicalJoystick {
	return h.sticks[id]
}

// Sticks returns every connected device in runtime ID order. For UI
// enumeration.
func (h *Handler) Sticks() []*PhysicalJoystick {
	sticks := make([]*PhysicalJoystick, 0, len(h.sticks))
	for _, j := range h.sticks {
		sticks = append(sticks, j)
	}
	sort.Slice(sticks, func(i, k int) bool { return sticks[i].ID < sticks[k].ID })
	return sticks
}

// jackFor assigns connected devices to console jacks. Devices with even
// runtime IDs serve the left jack, odd IDs the right jack.
func jackFor(id int) ports.Jack {
	if id%2 == 0 {
		return ports.LeftJack
	}
	return ports.RightJack
}

// InstallDefaultMappings records the controller kind serving the jack and
// writes its default bindings into every device serving that jack, now and
// as they connect. Events that already have a binding are left alone.
func (h *Handler) InstallDefaultMappings(kind ports.Controller, jack ports.Jack) {
	h.kinds[jack] = kind

	for _, j := range h.sticks {
		if jackFor(j.ID) == jack {
			h.installDefaults(j)
		}
	}
}

// installDefaults writes the default bindings for the device's jack into
// its binding table, per the controller kind recorded for the jack.
func (h *Handler) installDefaults(j *PhysicalJoystick) {
	jack := jackFor(j.ID)

	var mappings []defaultMapping

	switch h.kinds[jack] {
	case ports.SaveKey, ports.AtariVox:
		// save devices have no stick input

	case ports.Paddles:
		if jack == ports.LeftJack {
			mappings = defaultLeftPaddlesMappings
		} else {
			mappings = defaultRightPaddlesMappings
		}
	case ports.Keyboard, ports.CompuMate:
		if jack == ports.LeftJack {
			mappings = defaultLeftKeypadMappings
		} else {
			mappings = defaultRightKeypadMappings
		}
	default:
		if jack == ports.LeftJack {
			mappings = defaultLeftJoystickMappings
		} else {
			mappings = defaultRightJoystickMappings
		}
	}

	install(j.joyMap, mappings)
	install(j.joyMap, defaultCommonMappings)
	install(j.joyMap, defaultMenuMappings)
}

// EnableEmulationMappings records the controller modes serving the two
// jacks and rebuilds the emulation mode table of every connected device
// from the common mode bindings and the bindings of the controller mode
// serving the device's jack. Devices connecting later get the same merge.
func (h *Handler) EnableEmulationMappings(leftMode event.Mode, rightMode event.Mode) {
	h.leftMode = leftMode
	h.rightMode = rightMode
	h.RefreshEmulationMappings()
}

// RefreshEmulationMappings rebuilds the emulation mode table of every
// connected device with the modes given to the most recent
// EnableEmulationMappings call. Must be called after a binding in one of
// the merged modes changes.
func (h *Handler) RefreshEmulationMappings() {
	for _, j := range h.sticks {
		h.enableEmulation(j)
	}
}

func (h *Handler) enableEmulation(j *PhysicalJoystick) {
	j.joyMap.EraseMode(event.EmulationMode)
	j.joyMap.CopyMode(event.CommonMode, event.EmulationMode)
	if jackFor(j.ID) == ports.LeftJack {
		j.joyMap.CopyMode(h.leftMode, event.EmulationMode)
	} else {
		j.joyMap.CopyMode(h.rightMode, event.EmulationMode)
	}
}

// HandleAxisEvent resolves a raw axis value from the device against its
// bindings. An unknown ID is silently dropped.
func (h *Handler) HandleAxisEvent(id int, mode event.Mode, axis int, value int16, dispatch event.Dispatch) {
	if j := h.sticks[id]; j != nil {
		j.handleAxis(mode, axis, value, dispatch)
	}
}

// HandleButtonEvent resolves a raw button transition from the device
// against its bindings. An unknown ID is silently dropped.
func (h *Handler) HandleButtonEvent(id int, mode event.Mode, button int, pressed bool, dispatch event.Dispatch) {
	if j := h.sticks[id]; j != nil {
		j.handleButton(mode, button, pressed, dispatch)
	}
}

// HandleHatEvent resolves a raw hat position from the device against its
// bindings. An unknown ID is silently dropped.
func (h *Handler) HandleHatEvent(id int, mode event.Mode, hat int, dir joymap.HatDir, dispatch event.Dispatch) {
	if j := h.sticks[id]; j != nil {
		j.handleHat(mode, hat, dir, dispatch)
	}
}

// exportStick serialises the persisted modes of the device's binding table.
func (h *Handler) exportStick(j *PhysicalJoystick) string {
	entries := make([]string, 0, len(persistedModes))
	for _, mode := range persistedModes {
		entries = append(entries, fmt.Sprintf("%d>%s", int(mode), j.joyMap.SaveMapping(mode)))
	}
	return strings.Join(entries, ";")
}

func (h *Handler) importStick(j *PhysicalJoystick, saved string) {
	for _, entry := range strings.Split(saved, ";") {
		spt := strings.SplitN(entry, ">", 2)
		if len(spt) != 2 {
			logger.Logf("joystick", "skipping saved mode %q for %s", entry, j.Name)
			continue
		}
		mode, err := strconv.Atoi(spt[0])
		if err != nil {
			logger.Logf("joystick", "skipping saved mode %q for %s", entry, j.Name)
			continue
		}
		j.joyMap.LoadMapping(event.Mode(mode), spt[1])
	}
}

// ExportDatabase returns the bindings of every known device, connected or
// not, as a single string suitable for a preferences entry.
func (h *Handler) ExportDatabase() string {
	// connected sticks carry the live bindings
	for _, j := range h.sticks {
		h.database[j.Name] = h.exportStick(j)
	}

	names := make([]string, 0, len(h.database))
	for name := range h.database {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]string, 0, len(names))
	for _, name := range names {
		entries = append(entries, strconv.Quote(name)+"="+h.database[name])
	}
	return strings.Join(entries, "&")
}

// ImportDatabase replaces the remembered device bindings with the contents
// of the string, which must have been produced by ExportDatabase. Malformed
// entries are logged and skipped. Bindings for devices that are currently
// connected take effect immediately.
func (h *Handler) ImportDatabase(s string) {
	h.database = make(map[string]string)

	if s == "" {
		return
	}

	for _, entry := range strings.Split(s, "&") {
		quoted, err := strconv.QuotedPrefix(entry)
		if err != nil {
			logger.Logf("joystick", "skipping database entry %q", entry)
			continue
		}
		name, err := strconv.Unquote(quoted)
		if err != nil || len(quoted) >= len(entry) || entry[len(quoted)] != '=' {
			logger.Logf("joystick", "skipping database entry %q", entry)
			continue
		}
		h.database[name] = entry[len(quoted)+1:]
	}

	for _, j := range h.sticks {
		if saved, ok := h.database[j.Name]; ok {
			h.importStick(j, saved)
			h.installDefaults(j)
			h.enableEmulation(j)
		}
	}
}
