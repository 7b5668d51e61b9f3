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

package detection

// The signatures below are short 6507 instruction sequences known to appear
// in ROMs written for a specific controller. Each signature is annotated with
// the instructions it encodes. INPT0 to INPT5 are the TIA input port
// registers. the $30 variants are the same registers through address
// mirrors.

// SaveKey driver code. the I2C handshake writes to SWCHA and SWACNT. right
// port only.
var saveKeySignatures = [][]byte{
	// I2C_START (i2c.inc)
	// lda #I2C_SCL_MASK; sta SWCHA; lda #I2C_SCL_MASK|I2C_SDA_MASK; sta SWACNT
	{0xa9, 0x08, 0x8d, 0x80, 0x02, 0xa9, 0x0c, 0x8d, 0x81},

	// I2C_START (i2c_v2.1..3.inc)
	// lda #(I2C_SCL_MASK|I2C_SDA_MASK)*2; sta SWCHA; lsr; sta SWACNT
	{0xa9, 0x18, 0x8d, 0x80, 0x02, 0x4a, 0x8d, 0x81, 0x02},

	// I2C_START (Strat-O-Gems)
	// ldx #I2C_SCL_MASK; stx SWCHA; ldx #I2C_SCL_MASK|I2C_SDA_MASK; stx SWACNT
	{0xa2, 0x08, 0x8e, 0x80, 0x02, 0xa2, 0x0c, 0x8e, 0x81},

	// I2C_START (AStar, Fall Down, Go Fish!)
	// lda #I2C_SCL_MASK; sta SWCHA; nop; lda #I2C_SCL_MASK|I2C_SDA_MASK; sta SWACNT
	{0xa9, 0x08, 0x8d, 0x80, 0x02, 0xea, 0xa9, 0x0c, 0x8d},
}

// INPT4 access. the joystick fire button on the left port.
var leftJoystickButtonSignatures = [][]byte{
	{0x24, 0x0c, 0x10},             // bit INPT4; bpl
	{0x24, 0x0c, 0x30},             // bit INPT4; bmi
	{0xa5, 0x0c, 0x10},             // lda INPT4; bpl
	{0xa5, 0x0c, 0x30},             // lda INPT4; bmi
	{0xb5, 0x0c, 0x10},             // lda INPT4,x; bpl
	{0xb5, 0x0c, 0x30},             // lda INPT4,x; bmi
	{0x24, 0x3c, 0x10},             // bit INPT4|$30; bpl
	{0x24, 0x3c, 0x30},             // bit INPT4|$30; bmi
	{0xa5, 0x3c, 0x10},             // lda INPT4|$30; bpl
	{0xa5, 0x3c, 0x30},             // lda INPT4|$30; bmi
	{0xb5, 0x3c, 0x10},             // lda INPT4|$30,x; bpl
	{0xb5, 0x3c, 0x30},             // lda INPT4|$30,x; bmi
	{0xb4, 0x0c, 0x30},             // ldy INPT4|$30,x; bmi
	{0xa5, 0x3c, 0x2a},             // ldy INPT4|$30; rol
	{0xa6, 0x3c, 0x8e},             // ldx INPT4|$30; stx
	{0xa4, 0x3c, 0x8c},             // ldy INPT4; sty (Scramble)
	{0xa5, 0x0c, 0x8d},             // lda INPT4; sta (Super Cobra Arcade)
	{0xa4, 0x0c, 0x30},             // ldy INPT4; bmi (Game of Concentration)
	{0xa4, 0x3c, 0x30},             // ldy INPT4|$30; bmi (Game of Concentration)
	{0xa5, 0x0c, 0x25},             // lda INPT4; and
	{0xa6, 0x3c, 0x30},             // ldx INPT4|$30; bmi
	{0xa6, 0x0c, 0x30},             // ldx INPT4; bmi
	{0xa5, 0x0c, 0x0a},             // lda INPT4; asl
	{0xb9, 0x0c, 0x00, 0x10},       // lda INPT4,y; bpl
	{0xb9, 0x0c, 0x00, 0x30},       // lda INPT4,y; bmi
	{0xb9, 0x3c, 0x00, 0x10},       // lda INPT4|$30,y; bpl
	{0xb9, 0x3c, 0x00, 0x30},       // lda INPT4|$30,y; bmi
	{0xa5, 0x0c, 0x0a, 0xb0},       // lda INPT4; asl; bcs
	{0xb5, 0x0c, 0x29, 0x80},       // lda INPT4,x; and #$80
	{0xb5, 0x3c, 0x29, 0x80},       // lda INPT4|$30,x; and #$80
	{0xa5, 0x0c, 0x29, 0x80},       // lda INPT4; and #$80
	{0xa5, 0x3c, 0x29, 0x80},       // lda INPT4|$30; and #$80
	{0xa5, 0x0c, 0x25, 0x0d, 0x10}, // lda INPT4; and INPT5; bpl
	{0xa5, 0x0c, 0x25, 0x0d, 0x30}, // lda INPT4; and INPT5; bmi
	{0xa5, 0x3c, 0x25, 0x3d, 0x10}, // lda INPT4|$30; and INPT5|$30; bpl
	{0xa5, 0x3c, 0x25, 0x3d, 0x30}, // lda INPT4|$30; and INPT5|$30; bmi
	{0xb5, 0x38, 0x29, 0x80, 0xd0}, // lda INPT0|$30,y; and #$80; bne (Basic Programming)
	{0xa9, 0x80, 0x24, 0x0c, 0xd0}, // lda #$80; bit INPT4; bne (bBasic)
	{0xa5, 0x0c, 0x29, 0x80, 0xd0}, // lda INPT4; and #$80; bne
	{0xa5, 0x3c, 0x29, 0x80, 0xd0}, // lda INPT4|$30; and #$80; bne
	{0xad, 0x0c, 0x00, 0x29, 0x80}, // lda.w INPT4|$30; and #$80
}

// INPT5 and indexed INPT4 access. the joystick fire button on the right
// port.
var rightJoystickButtonSignatures = [][]byte{
	{0x24, 0x0d, 0x10},             // bit INPT5; bpl
	{0x24, 0x0d, 0x30},             // bit INPT5; bmi
	{0xa5, 0x0d, 0x10},             // lda INPT5; bpl
	{0xa5, 0x0d, 0x30},             // lda INPT5; bmi
	{0xb5, 0x0c, 0x10},             // lda INPT4,x; bpl
	{0xb5, 0x0c, 0x30},             // lda INPT4,x; bmi
	{0x24, 0x3d, 0x10},             // bit INPT5|$30; bpl
	{0x24, 0x3d, 0x30},             // bit INPT5|$30; bmi
	{0xa5, 0x3d, 0x10},             // lda INPT5|$30; bpl
	{0xa5, 0x3d, 0x30},             // lda INPT5|$30; bmi
	{0xb5, 0x3c, 0x10},             // lda INPT4|$30,x; bpl
	{0xb5, 0x3c, 0x30},             // lda INPT4|$30,x; bmi
	{0xa4, 0x3d, 0x30},             // ldy INPT5; bmi (Game of Concentration)
	{0xa5, 0x0d, 0x25},             // lda INPT5; and
	{0xa6, 0x3d, 0x30},             // ldx INPT5|$30; bmi
	{0xa6, 0x0d, 0x30},             // ldx INPT5; bmi
	{0xb9, 0x0c, 0x00, 0x10},       // lda INPT4,y; bpl
	{0xb9, 0x0c, 0x00, 0x30},       // lda INPT4,y; bmi
	{0xb9, 0x3c, 0x00, 0x10},       // lda INPT4|$30,y; bpl
	{0xb9, 0x3c, 0x00, 0x30},       // lda INPT4|$30,y; bmi
	{0xb5, 0x0c, 0x29, 0x80},       // lda INPT4,x; and #$80
	{0xb5, 0x3c, 0x29, 0x80},       // lda INPT4|$30,x; and #$80
	{0xa5, 0x3d, 0x29, 0x80},       // lda INPT5|$30; and #$80
	{0xb5, 0x38, 0x29, 0x80, 0xd0}, // lda INPT0|$30,y; and #$80; bne (Basic Programming)
	{0xa9, 0x80, 0x24, 0x0d, 0xd0}, // lda #$80; bit INPT5; bne (bBasic)
	{0xad, 0x0d, 0x00, 0x29, 0x80}, // lda.w INPT5|$30; and #$80
}

// keyboard controllers ground two input lines per port. both must be
// accessed for a keyboard match. phase one checks the first line, phase two
// the second.
var leftKeyboardPhaseOneSignatures = [][]byte{
	{0x24, 0x38, 0x30},             // bit INPT0|$30; bmi
	{0xa5, 0x38, 0x10},             // lda INPT0|$30; bpl
	{0xa4, 0x38, 0x30},             // ldy INPT0|$30; bmi
	{0xb5, 0x38, 0x30},             // lda INPT0|$30,x; bmi
	{0x24, 0x08, 0x30},             // bit INPT0; bmi
	{0xa6, 0x08, 0x30},             // ldx INPT0; bmi
	{0xb5, 0x38, 0x29, 0x80, 0xd0}, // lda INPT0,x; and #$80; bne
}

var leftKeyboardPhaseTwoSignatures = [][]byte{
	{0x24, 0x39, 0x10},             // bit INPT1|$30; bpl
	{0x24, 0x39, 0x30},             // bit INPT1|$30; bmi
	{0xa5, 0x39, 0x10},             // lda INPT1|$30; bpl
	{0xa4, 0x39, 0x30},             // ldy INPT1|$30; bmi
	{0xb5, 0x38, 0x30},             // lda INPT0|$30,x; bmi
	{0x24, 0x09, 0x30},             // bit INPT1; bmi
	{0xa6, 0x09, 0x30},             // ldx INPT1; bmi
	{0xb5, 0x38, 0x29, 0x80, 0xd0}, // lda INPT0,x; and #$80; bne
}

var rightKeyboardPhaseOneSignatures = [][]byte{
	{0x24, 0x3a, 0x30},             // bit INPT2|$30; bmi
	{0xa5, 0x3a, 0x10},             // lda INPT2|$30; bpl
	{0xa4, 0x3a, 0x30},             // ldy INPT2|$30; bmi
	{0x24, 0x0a, 0x30},             // bit INPT2; bmi
	{0xa6, 0x0a, 0x30},             // ldx INPT2; bmi
	{0xb5, 0x38, 0x29, 0x80, 0xd0}, // lda INPT2,x; and #$80; bne
}

var rightKeyboardPhaseTwoSignatures = [][]byte{
	{0x24, 0x3b, 0x30},             // bit INPT3|$30; bmi
	{0xa5, 0x3b, 0x10},             // lda INPT3|$30; bpl
	{0xa4, 0x3b, 0x30},             // ldy INPT3|$30; bmi
	{0x24, 0x0b, 0x30},             // bit INPT3; bmi
	{0xa6, 0x0b, 0x30},             // ldx INPT3; bmi
	{0xb5, 0x38, 0x29, 0x80, 0xd0}, // lda INPT2,x; and #$80; bne
}

// INPT1 access. the Genesis gamepad's second button on the left port.
var leftGenesisSignatures = [][]byte{
	{0x24, 0x09, 0x10}, // bit INPT1; bpl
	{0x24, 0x09, 0x30}, // bit INPT1; bmi
	{0xa5, 0x09, 0x10}, // lda INPT1; bpl
	{0xa5, 0x09, 0x30}, // lda INPT1; bmi
	{0xa4, 0x09, 0x30}, // ldy INPT1; bmi
	{0xa6, 0x09, 0x30}, // ldx INPT1; bmi
	{0x24, 0x39, 0x10}, // bit INPT1|$30; bpl
	{0x24, 0x39, 0x30}, // bit INPT1|$30; bmi
	{0xa5, 0x39, 0x10}, // lda INPT1|$30; bpl
	{0xa5, 0x39, 0x30}, // lda INPT1|$30; bmi
	{0xa4, 0x39, 0x30}, // ldy INPT1|$30; bmi
	{0xa5, 0x39, 0x6a}, // lda INPT1|$30; ror
	{0xa6, 0x39, 0x8e}, // ldx INPT1|$30; stx
	{0xa4, 0x39, 0x8c}, // ldy INPT1|$30; sty (Scramble)
	{0xa5, 0x09, 0x8d}, // lda INPT1; sta (Super Cobra Arcade)
	{0xa5, 0x09, 0x29}, // lda INPT1; and
	{0x25, 0x39, 0x30}, // and INPT1|$30; bmi
	{0x25, 0x09, 0x10}, // and INPT1; bpl
}

// INPT3 access. the Genesis gamepad's second button on the right port.
var rightGenesisSignatures = [][]byte{
	{0x24, 0x0b, 0x10}, // bit INPT3; bpl
	{0x24, 0x0b, 0x30}, // bit INPT3; bmi
	{0xa5, 0x0b, 0x10}, // lda INPT3; bpl
	{0xa5, 0x0b, 0x30}, // lda INPT3; bmi
	{0x24, 0x3b, 0x10}, // bit INPT3|$30; bpl
	{0x24, 0x3b, 0x30}, // bit INPT3|$30; bmi
	{0xa5, 0x3b, 0x10}, // lda INPT3|$30; bpl
	{0xa5, 0x3b, 0x30}, // lda INPT3|$30; bmi
	{0xa6, 0x3b, 0x8e}, // ldx INPT3|$30; stx
	{0x25, 0x0b, 0x10}, // and INPT3; bpl
}

// INPT0 access. the left port paddle position line.
var leftPaddleSignatures = [][]byte{
	{0xa5, 0x08, 0x10},             // lda INPT0; bpl
	{0xa5, 0x08, 0x30},             // lda INPT0; bmi
	{0xb5, 0x08, 0x30},             // lda INPT0,x; bmi
	{0x24, 0x38, 0x10},             // bit INPT0|$30; bpl
	{0x24, 0x38, 0x30},             // bit INPT0|$30; bmi
	{0xa5, 0x38, 0x10},             // lda INPT0|$30; bpl
	{0xa5, 0x38, 0x30},             // lda INPT0|$30; bmi
	{0xb5, 0x38, 0x10},             // lda INPT0|$30,x; bpl (Circus Atari)
	{0xb5, 0x38, 0x30},             // lda INPT0|$30,x; bmi
	{0x68, 0x48, 0x10},             // pla; pha; bpl (Bachelor Party)
	{0xa5, 0x08, 0x4c},             // lda INPT0; jmp (Backgammon)
	{0xa4, 0x38, 0x30},             // ldy INPT0; bmi
	{0xb9, 0x08, 0x00, 0x30},       // lda INPT0,y; bmi (Encounter at L-5)
	{0xb9, 0x38, 0x00, 0x30},       // lda INPT0|$30,y; bmi (Video Olympics)
	{0x24, 0x08, 0x30, 0x02},       // bit INPT0; bmi +2 (Picnic)
	{0xb5, 0x38, 0x29, 0x80, 0xd0}, // lda INPT0|$30,x; and #$80; bne (Basic Programming)
	{0x24, 0x38, 0x85, 0x08, 0x10}, // bit INPT0|$30; sta COLUPF; bpl (Fireball)
	{0xb5, 0x38, 0x49, 0xff, 0x0a}, // lda INPT0|$30,x; eor #$ff; asl (Blackjack)
	{0xb1, 0xf2, 0x30, 0x02, 0xe6}, // lda ($f2),y; bmi; inc (Warplock)
}

// INPT2 and indexed INPT0 access. the right port paddle position line.
var rightPaddleSignatures = [][]byte{
	{0x24, 0x0a, 0x10},             // bit INPT2; bpl
	{0x24, 0x0a, 0x30},             // bit INPT2; bmi
	{0xa5, 0x0a, 0x10},             // lda INPT2; bpl
	{0xa5, 0x0a, 0x30},             // lda INPT2; bmi
	{0xb5, 0x0a, 0x10},             // lda INPT2,x; bpl
	{0xb5, 0x0a, 0x30},             // lda INPT2,x; bmi
	{0xb5, 0x08, 0x10},             // lda INPT0,x; bpl
	{0xb5, 0x08, 0x30},             // lda INPT0,x; bmi
	{0x24, 0x3a, 0x10},             // bit INPT2|$30; bpl
	{0x24, 0x3a, 0x30},             // bit INPT2|$30; bmi
	{0xa5, 0x3a, 0x10},             // lda INPT2|$30; bpl
	{0xa5, 0x3a, 0x30},             // lda INPT2|$30; bmi
	{0xb5, 0x3a, 0x10},             // lda INPT2|$30,x; bpl
	{0xb5, 0x3a, 0x30},             // lda INPT2|$30,x; bmi
	{0xb5, 0x38, 0x10},             // lda INPT0|$30,x; bpl (Circus Atari)
	{0xb5, 0x38, 0x30},             // lda INPT0|$30,x; bmi
	{0xa4, 0x3a, 0x30},             // ldy INPT2|$30; bmi
	{0xa5, 0x3b, 0x30},             // lda INPT3|$30; bmi (Tac Scan, ports swapped)
	{0xb9, 0x38, 0x00, 0x30},       // lda INPT0|$30,y; bmi (Video Olympics)
	{0xb5, 0x38, 0x29, 0x80, 0xd0}, // lda INPT0|$30,x; and #$80; bne (Basic Programming)
	{0x24, 0x38, 0x85, 0x08, 0x10}, // bit INPT2|$30; sta COLUPF; bpl (Fireball)
	{0xb5, 0x38, 0x49, 0xff, 0x0a}, // lda INPT0|$30,x; eor #$ff; asl (Blackjack)
}

// movement tables for the three trackball style controllers. data tables
// rather than code.
var trakBallSignatures = [][]byte{
	{0b1010, 0b1000, 0b1000, 0b1010, 0b0010, 0b0000}, // NextTrackTbl
	{0x00, 0x07, 0x87, 0x07, 0x88, 0x01},             // .MovementTab_1 (SMX7)
	{0x00, 0x01, 0x81, 0x01, 0x82, 0x03},             // .MovementTab_1
}

var atariMouseSignatures = [][]byte{
	{0b0101, 0b0111, 0b0100, 0b0110, 0b1101, 0b1111}, // NextTrackTbl
	{0x00, 0x87, 0x07, 0x00, 0x08, 0x81},             // .MovementTab_1 (SMX7)
	{0x00, 0x81, 0x01, 0x00, 0x02, 0x83},             // .MovementTab_1
}

var amigaMouseSignatures = [][]byte{
	{0b1100, 0b1000, 0b0100, 0b0000, 0b1101, 0b1001}, // NextTrackTbl
	{0x00, 0x88, 0x07, 0x01, 0x08, 0x00},             // .MovementTab_1 (SMX7)
	{0x00, 0x82, 0x01, 0x03, 0x02, 0x00},             // .MovementTab_1
	{0b100, 0b000, 0b000, 0b000, 0b101, 0b001},       // NextTrackTbl (MCTB)
}
