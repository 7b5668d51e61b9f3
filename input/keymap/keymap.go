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

// Package keymap maps keyboard input to logical events. A mapping is scoped
// by mode, meaning the same key can trigger different events in different
// input contexts.
package keymap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/logger"
)

// Mapping is the descriptor for a single key binding. Mod is always stored
// in its normalised form, see the convert function.
type Mapping struct {
	Mode event.Mode
	Key  Key
	Mod  Mod
}

// Description returns the presentation string for the mapping, for example
// "Ctrl+A". Not used for matching.
func (m Mapping) Description() string {
	return fmt.Sprintf("%s%s", m.Mod, m.Key)
}

// KeyMap is a mode scoped table of key bindings. The zero value is not
// usable, use NewKeyMap.
type KeyMap struct {
	table map[Mapping]event.Type

	// when disabled, modifier state is ignored when matching. bindings made
	// to a modifier key itself keep their modifier state either way
	modEnabled bool
}

// NewKeyMap is the preferred method of initialisation for the KeyMap type.
func NewKeyMap() *KeyMap {
	return &KeyMap{
		table:      make(map[Mapping]event.Type),
		modEnabled: true,
	}
}

// SetModEnabled controls whether modifier state takes part in matching.
func (km *KeyMap) SetModEnabled(enabled bool) {
	km.modEnabled = enabled
}

// ModEnabled returns whether modifier state takes part in matching.
func (km *KeyMap) ModEnabled() bool {
	return km.modEnabled
}

// convert normalises the modifier state of a descriptor. Bits outside of the
// recognised modifier groups are always stripped. If modifier matching is
// disabled the state collapses to ModNone, except for bindings to a modifier
// key itself.
func (km *KeyMap) convert(key Key, mod Mod) Mod {
	if !km.modEnabled && !key.IsModifier() {
		return ModNone
	}
	return mod & canonical
}

// Add binds the descriptor to the event. An existing binding for the same
// descriptor is silently replaced. Callers that want to protect existing
// bindings should Check before Add.
func (km *KeyMap) Add(ev event.Type, mode event.Mode, key Key, mod Mod) {
	if ev == event.NoType {
		km.Erase(mode, key, mod)
		return
	}
	km.table[Mapping{Mode: mode, Key: key, Mod: km.convert(key, mod)}] = ev
}

// Get returns the event bound to the descriptor. event.NoType on a miss.
func (km *KeyMap) Get(mode event.Mode, key Key, mod Mod) event.Type {
	if ev, ok := km.table[Mapping{Mode: mode, Key: key, Mod: km.convert(key, mod)}]; ok {
		return ev
	}
	return event.NoType
}

// Check returns true if the descriptor is bound to any event.
func (km *KeyMap) Check(mode event.Mode, key Key, mod Mod) bool {
	_, ok := km.table[Mapping{Mode: mode, Key: key, Mod: km.convert(key, mod)}]
	return ok
}

// Erase removes the binding for the descriptor, if any.
func (km *KeyMap) Erase(mode event.Mode, key Key, mod Mod) {
	delete(km.table, Mapping{Mode: mode, Key: key, Mod: km.convert(key, mod)})
}

// EraseEvent removes every binding to the event in the mode.
func (km *KeyMap) EraseEvent(ev event.Type, mode event.Mode) {
	for m, e := range km.table {
		if e == ev && m.Mode == mode {
			delete(km.table, m)
		}
	}
}

// EraseMode removes every binding in the mode.
func (km *KeyMap) EraseMode(mode event.Mode) {
	for m := range km.table {
		if m.Mode == mode {
			delete(km.table, m)
		}
	}
}

// CopyMode copies every binding in one mode to another mode. Used when a
// virtual controller mode is merged into the active emulation mode.
func (km *KeyMap) CopyMode(from event.Mode, to event.Mode) {
	add := make([]Mapping, 0)
	for m := range km.table {
		if m.Mode == from {
			add = append(add, m)
		}
	}
	for _, m := range add {
		km.table[Mapping{Mode: to, Key: m.Key, Mod: m.Mod}] = km.table[m]
	}
}

// EventMappings returns every descriptor currently bound to the event in the
// mode. The reverse of Get.
func (km *KeyMap) EventMappings(ev event.Type, mode event.Mode) []Mapping {
	mappings := make([]Mapping, 0)
	for m, e := range km.table {
		if e == ev && m.Mode == mode {
			mappings = append(mappings, m)
		}
	}
	return mappings
}

// Description returns the presentation string for every descriptor bound to
// the event in the mode, joined with a comma.
func (km *KeyMap) Description(ev event.Type, mode event.Mode) string {
	s := make([]string, 0)
	for _, m := range km.EventMappings(ev, mode) {
		s = append(s, m.Description())
	}
	return strings.Join(s, ", ")
}

// Size returns the number of bindings in the table across all modes.
func (km *KeyMap) Size() int {
	return len(km.table)
}

// SaveMapping returns the bindings for the mode as a flat delimited string.
// Iteration order of the underlying table is not stable so the order of the
// entries is unspecified. LoadMapping does not care.
func (km *KeyMap) SaveMapping(mode event.Mode) string {
	entries := make([]string, 0)
	for m, e := range km.table {
		if m.Mode == mode {
			entries = append(entries, fmt.Sprintf("%d:%d,%d", int(e), int(m.Key), int(m.Mod)))
		}
	}
	return strings.Join(entries, "|")
}

// LoadMapping replaces the bindings for the mode with the bindings in the
// string, which must have been produced by SaveMapping. Malformed entries
// are logged and skipped, they never fail the whole load. Returns the number
// of bindings loaded.
func (km *KeyMap) LoadMapping(mode event.Mode, mapping string) int {
	km.EraseMode(mode)

	if mapping == "" {
		return 0
	}

	count := 0
	for _, entry := range strings.Split(mapping, "|") {
		ev, key, mod, err := parseEntry(entry)
		if err != nil {
			logger.Logf("keymap", "skipping entry %q: %v", entry, err)
			continue
		}
		km.table[Mapping{Mode: mode, Key: key, Mod: km.convert(key, mod)}] = ev
		count++
	}

	return count
}

func parseEntry(entry string) (event.Type, Key, Mod, error) {
	spt := strings.SplitN(entry, ":", 2)
	if len(spt) != 2 {
		return event.NoType, KeyNone, ModNone, fmt.Errorf("missing event field")
	}

	e, err := strconv.Atoi(spt[0])
	if err != nil || e <= int(event.NoType) || e >= int(event.LastType) {
		return event.NoType, KeyNone, ModNone, fmt.Errorf("bad event")
	}

	fields := strings.Split(spt[1], ",")
	if len(fields) != 2 {
		return event.NoType, KeyNone, ModNone, fmt.Errorf("bad descriptor")
	}

	k, err := strconv.Atoi(fields[0])
	if err != nil {
		return event.NoType, KeyNone, ModNone, fmt.Errorf("bad key")
	}

	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return event.NoType, KeyNone, ModNone, fmt.Errorf("bad modifier")
	}

	return event.Type(e), Key(k), Mod(m), nil
}
