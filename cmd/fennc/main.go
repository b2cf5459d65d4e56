// Fennc lowers Fenn program descriptions into target statement trees and
// maintains the dependency database used for linking and dead-code
// elimination.
package main

import (
	"os"

	"src.fenn.dev/pkg/fennc"
	"src.fenn.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		fennc.Program{}))
}
