// This file is part of Chroma2600.
//
// Chroma2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chroma2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chroma2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/factor64/chroma2600/hardware"
	"github.com/factor64/chroma2600/hardware/television"
	"github.com/factor64/chroma2600/logger"
	"github.com/factor64/chroma2600/performance"
	"github.com/factor64/chroma2600/playmode"
)

const usage = `usage: chroma2600 [mode] [flags]

modes: run (default), headless, performance, graph
`

func main() {
	mode := "run"
	args := os.Args[1:]
	if len(args) > 0 && args[0][0] != '-' {
		mode = args[0]
		args = args[1:]
	}

	flags := flag.NewFlagSet(mode, flag.ExitOnError)
	spec := flags.String("spec", "NTSC", "television specification: NTSC or PAL")
	wav := flags.String("wav", "", "record audio to WAV file")
	frames := flags.Int("frames", 0, "frame limit for headless mode (0 = no limit)")
	silent := flags.Bool("silent", false, "no audio in headless mode")
	duration := flags.String("duration", "5s", "length of performance check")
	monitor := flags.Bool("monitor", false, "serve statsview runtime monitor during performance check")
	echo := flags.Bool("log", false, "echo log entries as they arrive")
	flags.Parse(args)

	if *echo {
		logger.SetEcho(os.Stderr)
	}

	var err error

	switch mode {
	case "run":
		err = playmode.Play(*spec, *wav)

	case "headless":
		err = playmode.Headless(*spec, *frames, *silent)

	case "performance":
		err = performance.Check(os.Stdout, *spec, *duration, *monitor)

	case "graph":
		var tv *television.Television
		tv, err = television.NewTelevision(*spec)
		if err == nil {
			con := hardware.NewConsole(tv, nil)
			performance.DumpObjectGraph(os.Stdout, con)
		}

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(10)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		logger.Tail(os.Stderr, 10)
		os.Exit(1)
	}
}
