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

// Package ports describes the two controller jacks on the console and the
// kinds of controller that can be plugged into them.
package ports

// Jack conceptualises the socket into which a controller is plugged.
type Jack string

// List of valid Jack values.
const (
	LeftJack  Jack = "left"
	RightJack Jack = "right"
)

// Controller identifies a kind of controller.
type Controller string

// List of defined controllers. The first group can be automatically detected
// from a cartridge dump. The second group can only be selected explicitly.
const (
	Auto       Controller = "AUTO"
	Joystick   Controller = "JOYSTICK"
	Paddles    Controller = "PADDLES"
	Keyboard   Controller = "KEYBOARD"
	Genesis    Controller = "GENESIS"
	TrakBall   Controller = "TRAKBALL"
	AtariMouse Controller = "ATARIMOUSE"
	AmigaMouse Controller = "AMIGAMOUSE"
	SaveKey    Controller = "SAVEKEY"

	BoosterGrip Controller = "BOOSTERGRIP"
	Driving     Controller = "DRIVING"
	MindLink    Controller = "MINDLINK"
	AtariVox    Controller = "ATARIVOX"
	CompuMate   Controller = "COMPUMATE"
	KidVid      Controller = "KIDVID"
)

// String returns the human readable name of the controller.
func (c Controller) String() string {
	switch c {
	case Auto:
		return "Auto"
	case Joystick:
		return "Joystick"
	case Paddles:
		return "Paddles"
	case Keyboard:
		return "Keyboard"
	case Genesis:
		return "Sega Genesis"
	case TrakBall:
		return "TrakBall"
	case AtariMouse:
		return "AtariMouse"
	case AmigaMouse:
		return "AmigaMouse"
	case SaveKey:
		return "SaveKey"
	case BoosterGrip:
		return "BoosterGrip"
	case Driving:
		return "Driving"
	case MindLink:
		return "MindLink"
	case AtariVox:
		return "AtariVox"
	case CompuMate:
		return "CompuMate"
	case KidVid:
		return "KidVid"
	}
	return string(c)
}
