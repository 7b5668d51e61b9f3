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

// Package detection infers the type of controller a cartridge expects by
// searching the ROM data for byte signatures known to be specific to each
// controller. Detection is best effort. The order of the checks below is the
// tie break for ROMs that would match more than one signature and changing
// that order will change the result for those ROMs.
package detection

import (
	"bytes"

	"github.com/ASzc/stella/logger"
	"github.com/ASzc/stella/ports"
)

// Detect returns the controller for the jack. If hint is not ports.Auto the
// hint wins but a disagreement with the autodetection result is logged.
func Detect(data []byte, jack ports.Jack, hint ports.Controller) ports.Controller {
	detected := autodetect(data, jack)

	if hint != ports.Auto && hint != "" {
		if hint != detected {
			logger.Logf("detection", "%s port: controller override %s disagrees with detected %s",
				jack, hint, detected)
		}
		return hint
	}

	return detected
}

func autodetect(data []byte, jack ports.Jack) ports.Controller {
	if isProbablySaveKey(data, jack) {
		return ports.SaveKey
	}

	if usesJoystickButton(data, jack) {
		switch {
		case isProbablyTrakBall(data):
			return ports.TrakBall
		case isProbablyAtariMouse(data):
			return ports.AtariMouse
		case isProbablyAmigaMouse(data):
			return ports.AmigaMouse
		case usesKeyboard(data, jack):
			return ports.Keyboard
		case usesGenesisButton(data, jack):
			return ports.Genesis
		}
	} else if usesPaddle(data, jack) {
		return ports.Paddles
	}

	return ports.Joystick
}

// searchAny returns true if any of the signatures appears in the data.
func searchAny(data []byte, signatures [][]byte) bool {
	for _, sig := range signatures {
		if bytes.Contains(data, sig) {
			return true
		}
	}
	return false
}

func isProbablySaveKey(data []byte, jack ports.Jack) bool {
	// the SaveKey driver only supports the right port
	return jack == ports.RightJack && searchAny(data, saveKeySignatures)
}

func usesJoystickButton(data []byte, jack ports.Jack) bool {
	if jack == ports.LeftJack {
		return searchAny(data, leftJoystickButtonSignatures)
	}
	return searchAny(data, rightJoystickButtonSignatures)
}

func usesKeyboard(data []byte, jack ports.Jack) bool {
	// a keyboard controller grounds two input lines. both must be read by
	// the ROM for a match
	if jack == ports.LeftJack {
		return searchAny(data, leftKeyboardPhaseOneSignatures) &&
			searchAny(data, leftKeyboardPhaseTwoSignatures)
	}
	return searchAny(data, rightKeyboardPhaseOneSignatures) &&
		searchAny(data, rightKeyboardPhaseTwoSignatures)
}

func usesGenesisButton(data []byte, jack ports.Jack) bool {
	if jack == ports.LeftJack {
		return searchAny(data, leftGenesisSignatures)
	}
	return searchAny(data, rightGenesisSignatures)
}

func usesPaddle(data []byte, jack ports.Jack) bool {
	if jack == ports.LeftJack {
		return searchAny(data, leftPaddleSignatures)
	}
	return searchAny(data, rightPaddleSignatures)
}

// the trackball style controllers share driver code that walks a movement
// table. the tables differ per controller.

func isProbablyTrakBall(data []byte) bool {
	return searchAny(data, trakBallSignatures)
}

func isProbablyAtariMouse(data []byte) bool {
	return searchAny(data, atariMouseSignatures)
}

func isProbablyAmigaMouse(data []byte) bool {
	return searchAny(data, amigaMouseSignatures)
}
