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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/ASzc/stella/cartridgeloader"
	"github.com/ASzc/stella/detection"
	"github.com/ASzc/stella/event"
	"github.com/ASzc/stella/eventhandler"
	"github.com/ASzc/stella/gui/sdlinput"
	"github.com/ASzc/stella/input/joystick"
	"github.com/ASzc/stella/input/keyboard"
	"github.com/ASzc/stella/logger"
	"github.com/ASzc/stella/modalflag"
	"github.com/ASzc/stella/ports"
	"github.com/ASzc/stella/statsview"
	"github.com/ASzc/stella/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DETECT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DETECT":
		err = detect(md)

	case "VERSION":
		fmt.Println(version.Version)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// detect loads a cartridge and reports which controller it expects in each
// jack. Nothing is emulated.
func detect(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("2600 cartridge required for %s mode", md)
	case 1:
		ld, err := cartridgeloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		left := detection.Detect(ld.Data, ports.LeftJack, ports.Auto)
		right := detection.Detect(ld.Data, ports.RightJack, ports.Auto)

		fmt.Printf("%s (md5: %s)\n", ld.ShortName(), ld.Hash)
		fmt.Printf("  left jack: %s\n", left)
		fmt.Printf(" right jack: %s\n", right)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	leftHint := md.AddString("left", "AUTO", "left jack controller (overrides detection)")
	rightHint := md.AddString("right", "AUTO", "right jack controller (overrides detection)")
	stats := md.AddBool("statsview", false, "open stats server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* stats server not available in this build")
		}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("2600 cartridge required for %s mode", md)
	case 1:
		ld, err := cartridgeloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		left := detection.Detect(ld.Data, ports.LeftJack, controllerHint(*leftHint))
		right := detection.Detect(ld.Data, ports.RightJack, controllerHint(*rightHint))
		fmt.Printf("%s: %s / %s\n", ld.ShortName(), left, right)

		return service(left, right)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

// service runs the input pipeline until quit is requested.
func service(left ports.Controller, right ports.Controller) error {
	latch := &event.Latch{}
	kb := keyboard.NewKeyboard()
	sticks := joystick.NewHandler()
	handler := eventhandler.NewEventHandler(latch, kb, sticks)

	prf, err := eventhandler.NewPreferences(handler)
	if err != nil {
		return err
	}
	if err := prf.Load(); err != nil {
		return err
	}

	sticks.InstallDefaultMappings(left, ports.LeftJack)
	sticks.InstallDefaultMappings(right, ports.RightJack)

	kb.EnableEmulationMappings(emulationMode(left), emulationMode(right))
	sticks.EnableEmulationMappings(emulationMode(left), emulationMode(right))

	inp, err := sdlinput.NewInput(handler, kb, sticks)
	if err != nil {
		return err
	}
	defer inp.Destroy()

	handler.SetState(eventhandler.StateEmulation)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	for !handler.QuitRequested() {
		select {
		case <-intChan:
			fmt.Println("\r")
			handler.HandleEvent(event.Quit, 1, false)
		default:
			inp.Service()
		}
	}

	return prf.Save()
}

// controllerHint normalises a command line controller name. Anything
// unrecognised falls back to automatic detection.
func controllerHint(s string) ports.Controller {
	c := ports.Controller(strings.ToUpper(s))
	switch c {
	case ports.Joystick, ports.Paddles, ports.Keyboard, ports.Genesis,
		ports.TrakBall, ports.AtariMouse, ports.AmigaMouse, ports.SaveKey,
		ports.BoosterGrip, ports.Driving, ports.MindLink, ports.AtariVox,
		ports.CompuMate, ports.KidVid:
		return c
	}
	return ports.Auto
}

// emulationMode selects the binding table a controller uses during
// emulation.
func emulationMode(c ports.Controller) event.Mode {
	switch c {
	case ports.Paddles:
		return event.PaddlesMode
	case ports.Keyboard, ports.CompuMate:
		return event.KeypadMode
	}
	return event.JoystickMode
}
