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

// Package joymap maps physical joystick input to logical events. Every
// physical joystick owns its own JoyMap instance.
package joymap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/logger"
)

// None is the value of the Button, Axis and Hat fields of a Mapping when
// that field does not take part in the descriptor.
const None = -1

// AxisDir is the direction of travel of an axis.
type AxisDir int

// List of axis directions.
const (
	AxisNeg AxisDir = iota
	AxisPos
	AxisDirNone
)

func (d AxisDir) String() string {
	switch d {
	case AxisNeg:
		return "-"
	case AxisPos:
		return "+"
	}
	return ""
}

// HatDir is the position of a hat switch.
type HatDir int

// List of hat positions.
const (
	HatUp HatDir = iota
	HatDown
	HatLeft
	HatRight
	HatCenter
)

func (d HatDir) String() string {
	switch d {
	case HatUp:
		return "Up"
	case HatDown:
		return "Down"
	case HatLeft:
		return "Left"
	case HatRight:
		return "Right"
	case HatCenter:
		return "Center"
	}
	return ""
}

// Mapping is the descriptor for a single joystick binding. Button, Axis and
// Hat are stick relative numbers with None meaning "not populated". A
// descriptor populates exactly one of button, axis or hat.
type Mapping struct {
	Mode    event.Mode
	Button  int
	Axis    int
	AxisDir AxisDir
	Hat     int
	HatDir  HatDir
}

// ButtonMapping returns a descriptor for a button press.
func ButtonMapping(mode event.Mode, button int) Mapping {
	return Mapping{Mode: mode, Button: button, Axis: None, AxisDir: AxisDirNone, Hat: None, HatDir: HatCenter}
}

// AxisMapping returns a descriptor for travel of an axis in one direction.
func AxisMapping(mode event.Mode, axis int, dir AxisDir) Mapping {
	return Mapping{Mode: mode, Button: None, Axis: axis, AxisDir: dir, Hat: None, HatDir: HatCenter}
}

// HatMapping returns a descriptor for a hat switch position.
func HatMapping(mode event.Mode, hat int, dir HatDir) Mapping {
	return Mapping{Mode: mode, Button: None, Axis: None, AxisDir: AxisDirNone, Hat: hat, HatDir: dir}
}

// Description returns the presentation string for the mapping, for example
// "Button 3" or "Hat 0 Up". Not used for matching.
func (m Mapping) Description() string {
	switch {
	case m.Button != None:
		return fmt.Sprintf("Button %d", m.Button)
	case m.Axis != None:
		return fmt.Sprintf("Axis %d %s", m.Axis, m.AxisDir)
	case m.Hat != None:
		return fmt.Sprintf("Hat %d %s", m.Hat, m.HatDir)
	}
	return ""
}

// JoyMap is a mode scoped table of joystick bindings. The zero value is not
// usable, use NewJoyMap.
type JoyMap struct {
	table map[Mapping]event.Type
}

// NewJoyMap is the preferred method of initialisation for the JoyMap type.
func NewJoyMap() *JoyMap {
	return &JoyMap{
		table: make(map[Mapping]event.Type),
	}
}

// Add binds the descriptor to the event. An existing binding for the same
// descriptor is silently replaced.
func (jm *JoyMap) Add(ev event.Type, m Mapping) {
	if ev == event.NoType {
		delete(jm.table, m)
		return
	}
	jm.table[m] = ev
}

// Get returns the event bound to the descriptor. event.NoType on a miss.
func (jm *JoyMap) Get(m Mapping) event.Type {
	if ev, ok := jm.table[m]; ok {
		return ev
	}
	return event.NoType
}

// Check returns true if the descriptor is bound to any event.
func (jm *JoyMap) Check(m Mapping) bool {
	_, ok := jm.table[m]
	return ok
}

// Erase removes the binding for the descriptor, if any.
func (jm *JoyMap) Erase(m Mapping) {
	delete(jm.table, m)
}

// EraseEvent removes every binding to the event in the mode.
func (jm *JoyMap) EraseEvent(ev event.Type, mode event.Mode) {
	for m, e := range jm.table {
		if e == ev && m.Mode == mode {
			delete(jm.table, m)
		}
	}
}

// EraseMode removes every binding in the mode.
func (jm *JoyMap) EraseMode(mode event.Mode) {
	for m := range jm.table {
		if m.Mode == mode {
			delete(jm.table, m)
		}
	}
}

// CopyMode copies every binding in one mode to another mode. Used when a
// virtual controller mode is merged into the active emulation mode.
func (jm *JoyMap) CopyMode(from event.Mode, to event.Mode) {
	add := make([]Mapping, 0)
	for m := range jm.table {
		if m.Mode == from {
			add = append(add, m)
		}
	}
	for _, m := range add {
		ev := jm.table[m]
		m.Mode = to
		jm.table[m] = ev
	}
}

// EventMappings returns every descriptor currently bound to the event in the
// mode. The reverse of Get.
func (jm *JoyMap) EventMappings(ev event.Type, mode event.Mode) []Mapping {
	mappings := make([]Mapping, 0)
	for m, e := range jm.table {
		if e == ev && m.Mode == mode {
			mappings = append(mappings, m)
		}
	}
	return mappings
}

// Description returns the presentation string for every descriptor bound to
// the event in the mode, joined with a comma.
func (jm *JoyMap) Description(ev event.Type, mode event.Mode) string {
	s := make([]string, 0)
	for _, m := range jm.EventMappings(ev, mode) {
		s = append(s, m.Description())
	}
	return strings.Join(s, ", ")
}

// Size returns the number of bindings in the table across all modes.
func (jm *JoyMap) Size() int {
	return len(jm.table)
}

// SaveMapping returns the bindings for the mode as a flat delimited string.
func (jm *JoyMap) SaveMapping(mode event.Mode) string {
	entries := make([]string, 0)
	for m, e := range jm.table {
		if m.Mode == mode {
			entries = append(entries, fmt.Sprintf("%d:%d,%d,%d,%d,%d",
				int(e), m.Button, m.Axis, int(m.AxisDir), m.Hat, int(m.HatDir)))
		}
	}
	return strings.Join(entries, "|")
}

// LoadMapping replaces the bindings for the mode with the bindings in the
// string, which must have been produced by SaveMapping. Malformed entries
// are logged and skipped, they never fail the whole load. Returns the number
// of bindings loaded.
func (jm *JoyMap) LoadMapping(mode event.Mode, mapping string) int {
	jm.EraseMode(mode)

	if mapping == "" {
		return 0
	}

	count := 0
	for _, entry := range strings.Split(mapping, "|") {
		ev, m, err := parseEntry(mode, entry)
		if err != nil {
			logger.Logf("joymap", "skipping entry %q: %v", entry, err)
			continue
		}
		jm.table[m] = ev
		count++
	}

	return count
}

func parseEntry(mode event.Mode, entry string) (event.Type, Mapping, error) {
	spt := strings.SplitN(entry, ":", 2)
	if len(spt) != 2 {
		return event.NoType, Mapping{}, fmt.Errorf("missing event field")
	}

	e, err := strconv.Atoi(spt[0])
	if err != nil || e <= int(event.NoType) || e >= int(event.LastType) {
		return event.NoType, Mapping{}, fmt.Errorf("bad event")
	}

	fields := strings.Split(spt[1], ",")
	if len(fields) != 5 {
		return event.NoType, Mapping{}, fmt.Errorf("bad descriptor")
	}

	v := make([]int, 5)
	for i, f := range fields {
		v[i], err = strconv.Atoi(f)
		if err != nil {
			return event.NoType, Mapping{}, fmt.Errorf("bad descriptor")
		}
	}

	m := Mapping{
		Mode:    mode,
		Button:  v[0],
		Axis:    v[1],
		AxisDir: AxisDir(v[2]),
		Hat:     v[3],
		HatDir:  HatDir(v[4]),
	}

	return event.Type(e), m, nil
}
