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

// Package performance contains helper functions relating to performance:
// frame rate measurement against the specification, an optional live
// runtime monitor and an object-graph dump of the console for debugging.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/go-echarts/statsview"

	"github.com/factor64/chroma2600/curated"
	"github.com/factor64/chroma2600/hardware"
	"github.com/factor64/chroma2600/hardware/television"
	"github.com/factor64/chroma2600/logger"
)

// sentinel error patterns for the performance package.
const (
	PerformanceError = "performance: %v"
)

// Check is a very rough and ready calculation of the emulator's performance:
// the console is run flat out for the specified duration and the achieved
// frame rate compared with the specification's refresh rate.
//
// When monitor is true a statsview runtime monitor serves on its default
// port for the length of the measurement.
func Check(output io.Writer, spec string, runTime string, monitor bool) error {
	tv, err := television.NewTelevision(spec)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	con := hardware.NewConsole(tv, nil)
	con.Power()

	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	if monitor {
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		logger.Log("performance", "statsview monitor started")
	}

	frames := 0
	deadline := time.Now().Add(duration)

	err = con.Run(func() (bool, error) {
		frames++
		return time.Now().Before(deadline), nil
	})
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	fps := float64(frames) / duration.Seconds()
	ideal := float64(tv.GetSpec().RefreshRate)

	fmt.Fprintf(output, "%d frames in %v: %.2f fps (%s ideal %.2f fps, %.1f%%)\n",
		frames, duration, fps, tv.GetSpec().ID, ideal, fps/ideal*100)

	return nil
}

// DumpObjectGraph writes a graphviz visualisation of the console's object
// graph. Useful for checking that chips reference one another the way the
// architecture intends.
func DumpObjectGraph(output io.Writer, con *hardware.Console) {
	memviz.Map(output, con)
}
