// This file is part of Mockingboard.
//
// Mockingboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mockingboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mockingboard.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/mockingboard/hardware/clocks"
)

// Emulation is the interface to the emulation being measured.
type Emulation interface {
	Run(ctx context.Context, cycles uint64) error
}

// the number of cycles run between checks of the measurement period
const brake = 10000

// leadtime allows the emulation to settle before measurement begins
const leadtime = 500 * time.Millisecond

// Check the performance of the emulation. The emulation is run for the
// duration and the speed of the emulated clock is written to output.
func Check(output io.Writer, profile Profile, emulation Emulation, duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("performance: duration must be positive")
	}

	var cycles uint64

	runner := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), leadtime)
		defer cancel()
		for ctx.Err() == nil {
			err := emulation.Run(ctx, brake)
			if err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
		}

		ctx, cancel = context.WithTimeout(context.Background(), duration)
		defer cancel()
		for ctx.Err() == nil {
			err := emulation.Run(ctx, brake)
			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					break // for loop
				}
				return err
			}
			cycles += brake
		}
		return nil
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	mhz, accuracy := CalcSpeed(cycles, duration.Seconds())
	_, err = fmt.Fprintf(output, "%.3f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, duration.Seconds(), accuracy)
	return err
}

// CalcSpeed takes the number of cycles and the duration (in seconds) and
// returns the emulated clock speed in MHz and the accuracy of that value as a
// percentage of the NTSC clock.
func CalcSpeed(cycles uint64, duration float64) (mhz float64, accuracy float64) {
	mhz = float64(cycles) / duration / 1000000
	accuracy = 100 * mhz / clocks.NTSC
	return mhz, accuracy
}
