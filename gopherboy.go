// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/debugger"
	"github.com/jetsetilly/gopherboy/debugger/colorterm"
	"github.com/jetsetilly/gopherboy/debugger/console"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/modalflag"
	"github.com/jetsetilly/gopherboy/performance"
	"github.com/jetsetilly/gopherboy/statsview"
	"github.com/jetsetilly/gopherboy/version"
)

const mappingHelp = "bank controller: NONE, MBC1, MBC2, MBC3, MBC5"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("DEBUG", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "DEBUG":
		err = debug(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		vrsn, revision, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vrsn)
		if !release {
			fmt.Printf("  %s\n", revision)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(20)
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	mapping := md.AddString("mapping", "NONE", mappingHelp)
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not supported in this build")
		}
		statsview.Launch(md.Output)
	}

	var term console.UserInterface

	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &console.PlainTerminal{}
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	dbg, err := debugger.NewDebugger(*mapping, term)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return dbg.Start(nil)
	case 1:
		cartload := cartridgeloader.NewLoader(md.GetArg(0), *mapping)
		return dbg.Start(&cartload)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	mapping := md.AddString("mapping", "NONE", mappingHelp)
	profile := md.AddBool("profile", false, "run with cpu and memory profiling")
	duration := md.AddString("duration", "5s", "run duration")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return performance.Check(md.Output, *profile, *mapping, "", *duration)
	case 1:
		return performance.Check(md.Output, *profile, *mapping, md.GetArg(0), *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}
