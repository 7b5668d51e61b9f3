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
	"fmt"
	"strconv"
	"strings"

	"github.com/ASzc/stella/curated"
	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/logger"
)

// combos is the combo slot table. Every slot holds a fixed length sequence
// of events, padded with event.NoType.
type combos struct {
	table [event.ComboSize][event.EventsPerCombo]event.Type
}

// reset empties every slot.
func (c *combos) reset() {
	for i := range c.table {
		for j := range c.table[i] {
			c.table[i][j] = event.NoType
		}
	}
}

// slot returns the event sequence for the slot index. Out of range indexes
// return an empty sequence.
func (c *combos) slot(idx int) []event.Type {
	if idx < 0 || idx >= event.ComboSize {
		return nil
	}
	return c.table[idx][:]
}

// set replaces the event sequence for the slot index. The sequence is
// padded or truncated to the fixed slot length. Combo events cannot be part
// of a combo.
func (c *combos) set(idx int, evs []event.Type) error {
	if idx < 0 || idx >= event.ComboSize {
		return curated.Errorf("combo: no slot %d", idx)
	}
	if len(evs) > event.EventsPerCombo {
		return curated.Errorf("combo: too many events for slot %d", idx)
	}
	for _, ev := range evs {
		if ev.IsCombo() {
			return curated.Errorf("combo: combo event in slot %d", idx)
		}
	}

	for i := range c.table[idx] {
		if i < len(evs) {
			c.table[idx][i] = evs[i]
		} else {
			c.table[idx][i] = event.NoType
		}
	}

	return nil
}

// save returns the combo table as a single string. The string is tagged
// with the event table version and the slot count.
func (c *combos) save() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%d:%d", event.Version, event.ComboSize))
	for i := range c.table {
		evs := make([]string, event.EventsPerCombo)
		for j, ev := range c.table[i] {
			evs[j] = strconv.Itoa(int(ev))
		}
		s.WriteString(":")
		s.WriteString(strings.Join(evs, ","))
	}
	return s.String()
}

// load replaces the combo table with the contents of the string. A version
// or slot count mismatch, or any malformed slot, resets the whole table.
// The table is never partially trusted.
func (c *combos) load(s string) {
	c.reset()

	if s == "" {
		return
	}

	fields := strings.Split(s, ":")
	if len(fields) != event.ComboSize+2 {
		logger.Log("combo", "saved combos malformed, resetting")
		return
	}

	version, err := strconv.Atoi(fields[0])
	if err != nil || version != event.Version {
		logger.Log("combo", "saved combos are for a different event table, resetting")
		return
	}

	count, err := strconv.Atoi(fields[1])
	if err != nil || count != event.ComboSize {
		logger.Log("combo", "saved combos are for a different event table, resetting")
		return
	}

	for i, slot := range fields[2:] {
		evs := strings.Split(slot, ",")
		if len(evs) != event.EventsPerCombo {
			logger.Log("combo", "saved combos malformed, resetting")
			c.reset()
			return
		}
		for j, e := range evs {
			v, err := strconv.Atoi(e)
			if err != nil || v < int(event.NoType) || v >= int(event.LastType) {
				logger.Log("combo", "saved combos malformed, resetting")
				c.reset()
				return
			}
			c.table[i][j] = event.Type(v)
		}
	}
}

// SetCombo replaces the event sequence for a combo slot.
func (h *EventHandler) SetCombo(idx int, evs []event.Type) error {
	return h.combos.set(idx, evs)
}

// Combo returns the event sequence for a combo slot.
func (h *EventHandler) Combo(idx int) []event.Type {
	return h.combos.slot(idx)
}

// SaveCombos returns the combo table in its serialised form.
func (h *EventHandler) SaveCombos() string {
	return h.combos.save()
}

// LoadCombos replaces the combo table from its serialised form.
func (h *EventHandler) LoadCombos(s string) {
	h.combos.load(s)
}
