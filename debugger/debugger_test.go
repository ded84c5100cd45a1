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

package debugger_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/debugger"
	"github.com/jetsetilly/gopherboy/debugger/console"
	"github.com/jetsetilly/gopherboy/test"
)

// scriptTerm is a console.UserInterface that plays a fixed script of
// commands and records everything the debugger prints.
type scriptTerm struct {
	script []string
	output strings.Builder
}

func (trm *scriptTerm) Initialise() error {
	return nil
}

func (trm *scriptTerm) CleanUp() {
}

func (trm *scriptTerm) IsInteractive() bool {
	return false
}

func (trm *scriptTerm) UserRead(buffer []byte, prompt string) (int, error) {
	if len(trm.script) == 0 {
		// the script should always end with a QUIT command
		return 0, &console.UserInterrupt{Message: "end of script"}
	}

	command := trm.script[0]
	trm.script = trm.script[1:]

	n := copy(buffer, command)

	// simulate the newline that terminates interactive input
	return n + 1, nil
}

func (trm *scriptTerm) UserPrint(sty console.Style, s string, a ...interface{}) {
	trm.output.WriteString(fmt.Sprintf(s, a...))
	trm.output.WriteString("\n")
}

func run(t *testing.T, mapping string, script ...string) *scriptTerm {
	t.Helper()

	trm := &scriptTerm{script: script}

	dbg, err := debugger.NewDebugger(mapping, trm)
	test.ExpectedSuccess(t, err)

	err = dbg.Start(nil)
	test.ExpectedSuccess(t, err)

	return trm
}

func TestPeekPokeCommands(t *testing.T) {
	trm := run(t, "NONE",
		"POKE 0xc000 0x42",
		"PEEK 0xc000",
		"QUIT",
	)

	if !strings.Contains(trm.output.String(), "0xc000 -> 0x42") {
		t.Errorf("unexpected PEEK output: %s", trm.output.String())
	}
}

func TestSymbolicAddresses(t *testing.T) {
	trm := run(t, "NONE",
		"WRITE LCDC 0x91",
		"READ LCDC",
		"QUIT",
	)

	if !strings.Contains(trm.output.String(), "0xff40 (LCDC) -> 0x91") {
		t.Errorf("unexpected READ output: %s", trm.output.String())
	}
}

func TestBadCommand(t *testing.T) {
	trm := run(t, "NONE",
		"NOSUCHCOMMAND",
		"QUIT",
	)

	if !strings.Contains(trm.output.String(), "unrecognised command") {
		t.Errorf("expected error output: %s", trm.output.String())
	}
}

func TestInterruptCommand(t *testing.T) {
	trm := run(t, "NONE",
		"INTERRUPT TIMER",
		"WRITE IE 0x04",
		"INTERRUPT TIMER",
		"PEEK IF",
		"QUIT",
	)

	out := trm.output.String()
	if !strings.Contains(out, "TIMER interrupt is disabled") {
		t.Errorf("expected disabled interrupt output: %s", out)
	}
	if !strings.Contains(out, "0xff0f (IF) -> 0x01") {
		t.Errorf("expected raised interrupt output: %s", out)
	}
}
