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

package colorterm

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/debugger/colorterm/easyterm/ansi"
	"github.com/jetsetilly/gopherboy/debugger/console"
)

// UserPrint is the top level output function.
func (ct *ColorTerminal) UserPrint(sty console.Style, s string, a ...interface{}) {
	if sty != console.StyleInput {
		ct.TermPrint("\r")
	}

	switch sty {
	case console.StyleMachineInfo:
		ct.TermPrint(ansi.Pens["cyan"])
	case console.StyleError:
		ct.TermPrint(ansi.Pens["red"])
		ct.TermPrint("* ")
	case console.StyleHelp:
		ct.TermPrint(ansi.DimPens["white"])
		ct.TermPrint("  ")
	case console.StyleFeedback:
		ct.TermPrint(ansi.DimPens["white"])
	case console.StylePrompt:
		ct.TermPrint(ansi.PenStyles["bold"])
	}

	if len(a) > 0 {
		ct.TermPrint(fmt.Sprintf(s, a...))
	} else {
		ct.TermPrint(s)
	}
	ct.TermPrint(ansi.NormalPen)

	// add a newline if print style is anything other than prompt or input
	if sty != console.StylePrompt && sty != console.StyleInput {
		ct.TermPrint("\n")
	}
}
