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

package debugger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/debugger/console"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/logger"
)

// debugger keywords.
const (
	cmdBank      = "BANK"
	cmdCartridge = "CARTRIDGE"
	cmdDMA       = "DMA"
	cmdHelp      = "HELP"
	cmdInterrupt = "INTERRUPT"
	cmdLog       = "LOG"
	cmdPeek      = "PEEK"
	cmdPoke      = "POKE"
	cmdQuit      = "QUIT"
	cmdRead      = "READ"
	cmdReset     = "RESET"
	cmdViz       = "VIZ"
	cmdWrite     = "WRITE"
)

var helps = map[string]string{
	cmdBank:      "Select the bank visible in the banked ROM window (NONE controller only)",
	cmdCartridge: "Display information about the attached cartridge",
	cmdDMA:       "Run an OAM DMA transfer from the specified source page",
	cmdHelp:      "Lists commands and provides help for individual commands",
	cmdInterrupt: "Raise an interrupt (VBLANK, LCDSTAT, TIMER, SERIAL, JOYPAD)",
	cmdLog:       "Display the log",
	cmdPeek:      "Inspect an individual memory address (not gated by DMA)",
	cmdPoke:      "Modify an individual memory address (bypassing the bank controller)",
	cmdQuit:      "Exit the debugger",
	cmdRead:      "Read a memory address through the bus",
	cmdReset:     "Reset the machine (bank controller registers persist)",
	cmdViz:       "Write a visualisation of the cartridge state to a dot file",
	cmdWrite:     "Write a memory address through the bus",
}

// interrupt kinds by keyword.
var interrupts = map[string]memory.Interrupt{
	"VBLANK":  memory.VBlankInterrupt,
	"LCDSTAT": memory.LCDStatInterrupt,
	"TIMER":   memory.TimerInterrupt,
	"SERIAL":  memory.SerialInterrupt,
	"JOYPAD":  memory.JoypadInterrupt,
}

// symbols is the reverse of the addresses.CanonicalSymbols table.
var symbols = map[string]uint16{}

func init() {
	for addr, sym := range addresses.CanonicalSymbols {
		symbols[sym] = addr
	}
}

// parseAddress converts a token to a memory address. named registers (eg.
// DMA, IF) are recognised as well as numeric addresses.
func parseAddress(token string) (uint16, error) {
	if addr, ok := symbols[strings.ToUpper(token)]; ok {
		return addr, nil
	}

	addr, err := strconv.ParseUint(token, 0, 16)
	if err != nil {
		return 0, curated.Errorf("cannot interpret address: %s", token)
	}
	return uint16(addr), nil
}

func parseValue(token string) (uint8, error) {
	val, err := strconv.ParseUint(token, 0, 8)
	if err != nil {
		return 0, curated.Errorf("cannot interpret value: %s", token)
	}
	return uint8(val), nil
}

// symbolise decorates an address with its canonical symbol, if it has one.
func symbolise(addr uint16) string {
	if sym, ok := addresses.CanonicalSymbols[addr]; ok {
		return fmt.Sprintf("0x%04x (%s)", addr, sym)
	}
	return fmt.Sprintf("0x%04x", addr)
}

// parseInput tokenises the input and dispatches to the correct command.
func (dbg *Debugger) parseInput(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	default:
		return curated.Errorf("unrecognised command: %s", command)

	case cmdHelp:
		if len(args) > 0 {
			keyword := strings.ToUpper(args[0])
			if h, ok := helps[keyword]; ok {
				dbg.printLine(console.StyleHelp, "%s: %s", keyword, h)
			} else {
				dbg.printLine(console.StyleHelp, "no help for %s", keyword)
			}
			return nil
		}

		commands := make([]string, 0, len(helps))
		for c := range helps {
			commands = append(commands, c)
		}
		sort.Strings(commands)
		dbg.printLine(console.StyleHelp, strings.Join(commands, " "))

	case cmdQuit, "EXIT":
		dbg.running = false

	case cmdCartridge:
		dbg.printLine(console.StyleMachineInfo, "%v", dbg.dmg.Mem)

	case cmdPeek:
		if len(args) < 1 {
			return curated.Errorf("%s requires an address", cmdPeek)
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		dbg.printLine(console.StyleMachineInfo, "%s -> 0x%02x", symbolise(addr), dbg.dmg.Mem.Peek(addr))

	case cmdPoke:
		if len(args) < 2 {
			return curated.Errorf("%s requires an address and a value", cmdPoke)
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		val, err := parseValue(args[1])
		if err != nil {
			return err
		}
		dbg.dmg.Mem.Poke(addr, val)
		dbg.printLine(console.StyleFeedback, "%s <- 0x%02x", symbolise(addr), val)

	case cmdRead:
		if len(args) < 1 {
			return curated.Errorf("%s requires an address", cmdRead)
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		dbg.printLine(console.StyleMachineInfo, "%s -> 0x%02x", symbolise(addr), dbg.dmg.Mem.Read(addr))

	case cmdWrite:
		if len(args) < 2 {
			return curated.Errorf("%s requires an address and a value", cmdWrite)
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		val, err := parseValue(args[1])
		if err != nil {
			return err
		}
		dbg.dmg.Mem.Write(addr, val)

	case cmdBank:
		if len(args) < 1 {
			return curated.Errorf("%s requires a bank number", cmdBank)
		}
		bank, err := parseValue(args[0])
		if err != nil {
			return err
		}
		dbg.dmg.Mem.SetBank(bank)

	case cmdDMA:
		if len(args) < 1 {
			return curated.Errorf("%s requires a source page", cmdDMA)
		}
		source, err := parseValue(args[0])
		if err != nil {
			return err
		}
		dbg.dmg.Mem.DMA(source)
		dbg.printLine(console.StyleFeedback, "transfer from 0x%02x00 complete", source)

	case cmdInterrupt:
		if len(args) < 1 {
			return curated.Errorf("%s requires an interrupt kind", cmdInterrupt)
		}
		intr, ok := interrupts[strings.ToUpper(args[0])]
		if !ok {
			return curated.Errorf("unrecognised interrupt kind: %s", args[0])
		}
		if !dbg.dmg.Mem.CheckInterrupt(intr) {
			dbg.printLine(console.StyleFeedback, "%s interrupt is disabled", intr)
			return nil
		}
		dbg.dmg.Mem.TriggerInterrupt(intr)
		dbg.printLine(console.StyleFeedback, "%s interrupt raised", intr)

	case cmdReset:
		dbg.dmg.Reset()
		dbg.printLine(console.StyleFeedback, "machine reset")

	case cmdLog:
		logger.Write(&styleWriter{dbg: dbg, style: console.StyleFeedback})

	case cmdViz:
		filename := "cartridge.dot"
		if len(args) > 0 {
			filename = args[0]
		}
		err := dbg.visualise(filename)
		if err != nil {
			return err
		}
		dbg.printLine(console.StyleFeedback, "cartridge state written to %s", filename)
	}

	return nil
}
