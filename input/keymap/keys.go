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

package keymap

import "fmt"

// Key identifies a physical keyboard key independently of the windowing
// library in use. The GUI layer translates its own keycodes to these values
// before calling into the input handlers.
type Key int

// List of defined keys.
const (
	KeyNone Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyTab
	KeyReturn
	KeyEscape
	KeySpace
	KeyMinus
	KeyEquals
	KeyComma
	KeyPeriod
	KeySlash
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyBackquote
	KeyLeftBracket
	KeyRightBracket
	KeyPause
	KeyLShift
	KeyRShift
	KeyLCtrl
	KeyRCtrl
	KeyLAlt
	KeyRAlt
	KeyLGui
	KeyRGui
)

var keyNames = map[Key]string{
	KeyA:            "A",
	KeyB:            "B",
	KeyC:            "C",
	KeyD:            "D",
	KeyE:            "E",
	KeyF:            "F",
	KeyG:            "G",
	KeyH:            "H",
	KeyI:            "I",
	KeyJ:            "J",
	KeyK:            "K",
	KeyL:            "L",
	KeyM:            "M",
	KeyN:            "N",
	KeyO:            "O",
	KeyP:            "P",
	KeyQ:            "Q",
	KeyR:            "R",
	KeyS:            "S",
	KeyT:            "T",
	KeyU:            "U",
	KeyV:            "V",
	KeyW:            "W",
	KeyX:            "X",
	KeyY:            "Y",
	KeyZ:            "Z",
	Key0:            "0",
	Key1:            "1",
	Key2:            "2",
	Key3:            "3",
	Key4:            "4",
	Key5:            "5",
	Key6:            "6",
	Key7:            "7",
	Key8:            "8",
	Key9:            "9",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PgUp",
	KeyPageDown:     "PgDown",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyReturn:       "Return",
	KeyEscape:       "Escape",
	KeySpace:        "Space",
	KeyMinus:        "-",
	KeyEquals:       "=",
	KeyComma:        ",",
	KeyPeriod:       ".",
	KeySlash:        "/",
	KeyBackslash:    "\\",
	KeySemicolon:    ";",
	KeyQuote:        "'",
	KeyBackquote:    "`",
	KeyLeftBracket:  "[",
	KeyRightBracket: "]",
	KeyPause:        "Pause",
	KeyLShift:       "LShift",
	KeyRShift:       "RShift",
	KeyLCtrl:        "LCtrl",
	KeyRCtrl:        "RCtrl",
	KeyLAlt:         "LAlt",
	KeyRAlt:         "RAlt",
	KeyLGui:         "LGui",
	KeyRGui:         "RGui",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// IsModifier returns true if the key is itself a modifier key.
func (k Key) IsModifier() bool {
	return k >= KeyLShift && k <= KeyRGui
}

// Mod is the modifier state of a key press. A bitmask of the individual
// modifier keys.
type Mod int

// List of modifier bits. The combined values cover both keys of a modifier
// pair.
const (
	ModNone   Mod = 0x0000
	ModLShift Mod = 0x0001
	ModRShift Mod = 0x0002
	ModLCtrl  Mod = 0x0004
	ModRCtrl  Mod = 0x0008
	ModLAlt   Mod = 0x0010
	ModRAlt   Mod = 0x0020
	ModLGui   Mod = 0x0040
	ModRGui   Mod = 0x0080

	ModShift = ModLShift | ModRShift
	ModCtrl  = ModLCtrl | ModRCtrl
	ModAlt   = ModLAlt | ModRAlt
	ModGui   = ModLGui | ModRGui
)

// canonical is the set of bits recognised by the binding tables. anything
// else (num-lock, caps-lock etc.) is stripped before matching.
const canonical = ModShift | ModCtrl | ModAlt | ModGui

func (m Mod) String() string {
	s := ""
	if m&ModCtrl != 0 {
		s += "Ctrl+"
	}
	if m&ModAlt != 0 {
		s += "Alt+"
	}
	if m&ModShift != 0 {
		s += "Shift+"
	}
	if m&ModGui != 0 {
		s += "Gui+"
	}
	return s
}
