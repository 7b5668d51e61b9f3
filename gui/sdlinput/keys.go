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

package sdlinput

import (
	"github.com/ASzc/stella/input/keymap"

	"github.com/veandco/go-sdl2/sdl"
)

var keycodes = map[sdl.Keycode]keymap.Key{
	sdl.K_a:            keymap.KeyA,
	sdl.K_b:            keymap.KeyB,
	sdl.K_c:            keymap.KeyC,
	sdl.K_d:            keymap.KeyD,
	sdl.K_e:            keymap.KeyE,
	sdl.K_f:            keymap.KeyF,
	sdl.K_g:            keymap.KeyG,
	sdl.K_h:            keymap.KeyH,
	sdl.K_i:            keymap.KeyI,
	sdl.K_j:            keymap.KeyJ,
	sdl.K_k:            keymap.KeyK,
	sdl.K_l:            keymap.KeyL,
	sdl.K_m:            keymap.KeyM,
	sdl.K_n:            keymap.KeyN,
	sdl.K_o:            keymap.KeyO,
	sdl.K_p:            keymap.KeyP,
	sdl.K_q:            keymap.KeyQ,
	sdl.K_r:            keymap.KeyR,
	sdl.K_s:            keymap.KeyS,
	sdl.K_t:            keymap.KeyT,
	sdl.K_u:            keymap.KeyU,
	sdl.K_v:            keymap.KeyV,
	sdl.K_w:            keymap.KeyW,
	sdl.K_x:            keymap.KeyX,
	sdl.K_y:            keymap.KeyY,
	sdl.K_z:            keymap.KeyZ,
	sdl.K_0:            keymap.Key0,
	sdl.K_1:            keymap.Key1,
	sdl.K_2:            keymap.Key2,
	sdl.K_3:            keymap.Key3,
	sdl.K_4:            keymap.Key4,
	sdl.K_5:            keymap.Key5,
	sdl.K_6:            keymap.Key6,
	sdl.K_7:            keymap.Key7,
	sdl.K_8:            keymap.Key8,
	sdl.K_9:            keymap.Key9,
	sdl.K_F1:           keymap.KeyF1,
	sdl.K_F2:           keymap.KeyF2,
	sdl.K_F3:           keymap.KeyF3,
	sdl.K_F4:           keymap.KeyF4,
	sdl.K_F5:           keymap.KeyF5,
	sdl.K_F6:           keymap.KeyF6,
	sdl.K_F7:           keymap.KeyF7,
	sdl.K_F8:           keymap.KeyF8,
	sdl.K_F9:           keymap.KeyF9,
	sdl.K_F10:          keymap.KeyF10,
	sdl.K_F11:          keymap.KeyF11,
	sdl.K_F12:          keymap.KeyF12,
	sdl.K_UP:           keymap.KeyUp,
	sdl.K_DOWN:         keymap.KeyDown,
	sdl.K_LEFT:         keymap.KeyLeft,
	sdl.K_RIGHT:        keymap.KeyRight,
	sdl.K_HOME:         keymap.KeyHome,
	sdl.K_END:          keymap.KeyEnd,
	sdl.K_PAGEUP:       keymap.KeyPageUp,
	sdl.K_PAGEDOWN:     keymap.KeyPageDown,
	sdl.K_INSERT:       keymap.KeyInsert,
	sdl.K_DELETE:       keymap.KeyDelete,
	sdl.K_BACKSPACE:    keymap.KeyBackspace,
	sdl.K_TAB:          keymap.KeyTab,
	sdl.K_RETURN:       keymap.KeyReturn,
	sdl.K_ESCAPE:       keymap.KeyEscape,
	sdl.K_SPACE:        keymap.KeySpace,
	sdl.K_MINUS:        keymap.KeyMinus,
	sdl.K_EQUALS:       keymap.KeyEquals,
	sdl.K_COMMA:        keymap.KeyComma,
	sdl.K_PERIOD:       keymap.KeyPeriod,
	sdl.K_SLASH:        keymap.KeySlash,
	sdl.K_BACKSLASH:    keymap.KeyBackslash,
	sdl.K_SEMICOLON:    keymap.KeySemicolon,
	sdl.K_QUOTE:        keymap.KeyQuote,
	sdl.K_BACKQUOTE:    keymap.KeyBackquote,
	sdl.K_LEFTBRACKET:  keymap.KeyLeftBracket,
	sdl.K_RIGHTBRACKET: keymap.KeyRightBracket,
	sdl.K_PAUSE:        keymap.KeyPause,
	sdl.K_LSHIFT:       keymap.KeyLShift,
	sdl.K_RSHIFT:       keymap.KeyRShift,
	sdl.K_LCTRL:        keymap.KeyLCtrl,
	sdl.K_RCTRL:        keymap.KeyRCtrl,
	sdl.K_LALT:         keymap.KeyLAlt,
	sdl.K_RALT:         keymap.KeyRAlt,
	sdl.K_LGUI:         keymap.KeyLGui,
	sdl.K_RGUI:         keymap.KeyRGui,
}

// translateKey converts an SDL keycode. KeyNone for keys the binding tables
// do not know about.
func translateKey(code sdl.Keycode) keymap.Key {
	if k, ok := keycodes[code]; ok {
		return k
	}
	return keymap.KeyNone
}

// translateMod converts the SDL modifier state, keeping the left and right
// bits of each modifier pair distinct.
func translateMod(state sdl.Keymod) keymap.Mod {
	mod := keymap.ModNone
	if state&sdl.KMOD_LSHIFT != 0 {
		mod |= keymap.ModLShift
	}
	if state&sdl.KMOD_RSHIFT != 0 {
		mod |= keymap.ModRShift
	}
	if state&sdl.KMOD_LCTRL != 0 {
		mod |= keymap.ModLCtrl
	}
	if state&sdl.KMOD_RCTRL != 0 {
		mod |= keymap.ModRCtrl
	}
	if state&sdl.KMOD_LALT != 0 {
		mod |= keymap.ModLAlt
	}
	if state&sdl.KMOD_RALT != 0 {
		mod |= keymap.ModRAlt
	}
	if state&sdl.KMOD_LGUI != 0 {
		mod |= keymap.ModLGui
	}
	if state&sdl.KMOD_RGUI != 0 {
		mod |= keymap.ModRGui
	}
	return mod
}
