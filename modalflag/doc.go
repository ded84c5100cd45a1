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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes). Modes of this type can be thought of as different ways of
// running the program, with each mode given its own set of flags.
//
// For example, a program that can be run in DEBUG or PERFORMANCE mode, with
// a common -verbose flag:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DEBUG", "PERFORMANCE")
//	verbose := md.AddBool("verbose", false, "print additional information")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
//	switch md.Mode() {
//	case "DEBUG":
//		...
//	case "PERFORMANCE":
//		...
//	}
//
// Sub-modes can be nested. Calling NewMode() indicates that subsequent
// arguments belong to a new layer of flags and sub-modes. The first sub-mode
// in the list given to AddSubModes() is the default used when no sub-mode is
// specified on the command line.
package modalflag
