/*
package thread contains functions useful for multi-threaded snapshot
processing.
*/
package thread

import (
	"runtime"

	"github.com/comphy-lab/vofpost/lib/error"
)

// Set resolves and applies a requested worker count: n itself when
// 1 <= n <= NumCPU, or one worker per core when n is -1. Oversubscribing
// the machine is treated as a user error, not silently clamped.
func Set(n int) int {
	if n == -1 {
		n = runtime.NumCPU()
	}
	if n < 1 {
		error.External("%d workers requested; the count must be positive, "+
			"or -1 for one worker per core.", n)
	}
	if n > runtime.NumCPU() {
		error.External("%d workers requested, but your system only has %d "+
			"cores. If you want the maximum number of workers, set "+
			"-workers=-1.", n, runtime.NumCPU())
	}

	runtime.GOMAXPROCS(n)
	return n
}
