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

package detection_test

import (
	"testing"

	"github.com/ASzc/stella/detection"
	"github.com/ASzc/stella/ports"
	"github.com/ASzc/stella/test"
)

// rom builds a fake ROM image containing the supplied byte sequences
// separated by filler.
func rom(sequences ...[]byte) []byte {
	data := make([]byte, 0, 256)
	for _, seq := range sequences {
		data = append(data, 0xff, 0xff, 0xff)
		data = append(data, seq...)
	}
	data = append(data, 0xff, 0xff, 0xff)
	return data
}

var (
	// lda INPT4; bpl
	joyButtonLeft = []byte{0xa5, 0x0c, 0x10}

	// lda INPT5; bpl
	joyButtonRight = []byte{0xa5, 0x0d, 0x10}

	// lda INPT0; bpl
	paddleLeft = []byte{0xa5, 0x08, 0x10}

	// bit INPT2; bpl
	paddleRight = []byte{0x24, 0x0a, 0x10}

	// I2C handshake from the SaveKey driver
	saveKey = []byte{0xa9, 0x08, 0x8d, 0x80, 0x02, 0xa9, 0x0c, 0x8d, 0x81}

	// TrakBall movement table
	trakBall = []byte{0x00, 0x07, 0x87, 0x07, 0x88, 0x01}

	// bit INPT0; bmi and bit INPT1; bmi
	keyboardLeftA = []byte{0x24, 0x08, 0x30}
	keyboardLeftB = []byte{0x24, 0x09, 0x30}

	// ldy INPT1; bmi
	genesisLeft = []byte{0xa4, 0x09, 0x30}
)

func TestDefaultIsJoystick(t *testing.T) {
	data := rom()
	test.Equate(t, string(detection.Detect(data, ports.LeftJack, ports.Auto)), string(ports.Joystick))
	test.Equate(t, string(detection.Detect(data, ports.RightJack, ports.Auto)), string(ports.Joystick))
}

func TestDeterminism(t *testing.T) {
	data := rom(joyButtonLeft, trakBall)
	first := detection.Detect(data, ports.LeftJack, ports.Auto)
	for i := 0; i < 10; i++ {
		test.Equate(t, string(detection.Detect(data, ports.LeftJack, ports.Auto)), string(first))
	}
}

func TestSaveKeyBeatsPaddles(t *testing.T) {
	// the SaveKey check runs before everything else on the right port
	data := rom(saveKey, paddleRight)
	test.Equate(t, string(detection.Detect(data, ports.RightJack, ports.Auto)), string(ports.SaveKey))

	// the SaveKey driver is never detected on the left port
	test.Equate(t, string(detection.Detect(data, ports.LeftJack, ports.Auto)), string(ports.Joystick))
}

func TestTrakBallBeatsGenesis(t *testing.T) {
	data := rom(joyButtonLeft, trakBall, genesisLeft)
	test.Equate(t, string(detection.Detect(data, ports.LeftJack, ports.Auto)), string(ports.TrakBall))
}

func TestKeyboardRequiresBothLines(t *testing.T) {
	// access to only one of the two keypad input lines is not enough
	data := rom(joyButtonLeft, keyboardLeftA)
	test.Equate(t, string(detection.Detect(data, ports.LeftJack, ports.Auto)), string(ports.Joystick))

	data = rom(joyButtonLeft, keyboardLeftA, keyboardLeftB)
	test.Equate(t, string(detection.Detect(data, ports.LeftJack, ports.Auto)), string(ports.Keyboard))
}

func TestGenesis(t *testing.T) {
	data := rom(joyButtonLeft, genesisLeft)
	test.Equate(t, string(detection.Detect(data, ports.LeftJack, ports.Auto)), string(ports.Genesis))
}

func TestPaddlesOnlyWithoutButtonAccess(t *testing.T) {
	// paddle detection requires that the joystick button line is not used
	data := rom(paddleLeft)
	test.Equate(t, string(detection.Detect(data, ports.LeftJack, ports.Auto)), string(ports.Paddles))

	data = rom(paddleLeft, joyButtonLeft)
	test.Equate(t, string(detection.Detect(data, ports.LeftJack, ports.Auto)), string(ports.Joystick))
}

func TestJacksAreIndependent(t *testing.T) {
	data := rom(joyButtonRight, paddleLeft)
	test.Equate(t, string(detection.Detect(data, ports.LeftJack, ports.Auto)), string(ports.Paddles))
	test.Equate(t, string(detection.Detect(data, ports.RightJack, ports.Auto)), string(ports.Joystick))
}

func TestHintOverridesDetection(t *testing.T) {
	data := rom(paddleLeft)
	test.Equate(t, string(detection.Detect(data, ports.LeftJack, ports.Genesis)), string(ports.Genesis))
}
