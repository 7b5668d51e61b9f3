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

package prefs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ASzc/stella/curated"
)

// Value represents the actual Go preference value.
type Value interface{}

// pref is the interface implemented by all of the preference types in this
// package.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool implements a boolean preference.
type Bool struct {
	value bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.value)
}

// Set new value to Bool type. New value can be of type bool or string.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		p.value = v
	case string:
		switch strings.ToLower(v) {
		case "true":
			p.value = true
		default:
			p.value = false
		}
	default:
		return curated.Errorf("prefs: cannot convert %T to bool", v)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.value
}

// Reset sets the bool value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string preference.
type String struct {
	value string
}

func (p *String) String() string {
	return p.value
}

// Set new value to String type. New value must be a string or implement the
// Stringer interface.
func (p *String) Set(v Value) error {
	switch v := v.(type) {
	case string:
		p.value = v
	case fmt.Stringer:
		p.value = v.String()
	default:
		p.value = fmt.Sprintf("%v", v)
	}
	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.value
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer preference.
type Int struct {
	value int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.value)
}

// Set new value to Int type. New value can be of type int or string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		p.value = v
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return curated.Errorf("prefs: cannot convert %s to int", v)
		}
		p.value = i
	default:
		return curated.Errorf("prefs: cannot convert %T to int", v)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.value
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Generic implements a general purpose preference. The set and get functions
// are supplied on creation.
type Generic struct {
	set func(Value) error
	get func() Value
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{set: set, get: get}
}

func (p *Generic) String() string {
	return fmt.Sprintf("%v", p.get())
}

// Set calls the set function supplied on creation.
func (p *Generic) Set(v Value) error {
	return p.set(v)
}

// Get calls the get function supplied on creation.
func (p *Generic) Get() Value {
	return p.get()
}

// Reset sets the value to the empty string.
func (p *Generic) Reset() error {
	return p.set("")
}
