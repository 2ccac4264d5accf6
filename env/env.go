// Package env detects host capabilities relevant to module loading.
//
// Detection runs once per process and the resulting descriptor is memoized;
// Detect is cheap to call on every load. Capabilities is a plain comparable
// struct so tests can substitute their own descriptor.
package env

import (
	"net"
	"os"
	"sync"
)

// Capabilities describes what the host can do. The zero value means no
// capabilities; construct test descriptors directly.
type Capabilities struct {
	// Filesystem reports whether local files are readable.
	Filesystem bool

	// Network reports whether an outbound network fetch can plausibly
	// succeed. Best-effort: a usable interface existing does not guarantee
	// any particular host is reachable.
	Network bool

	// StreamingCompile reports whether the engine can compile a module
	// while its bytes are still arriving. Always false here: the engine
	// compiles from a complete byte buffer.
	StreamingCompile bool
}

var (
	detectOnce sync.Once
	detected   Capabilities
)

// Detect returns the host capability descriptor, computing it on first call.
func Detect() Capabilities {
	detectOnce.Do(func() {
		detected = Capabilities{
			Filesystem: hasFilesystem(),
			Network:    hasNetwork(),
		}
	})
	return detected
}

func hasFilesystem() bool {
	_, err := os.Stat(os.TempDir())
	return err == nil
}

func hasNetwork() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, ifc := range ifaces {
		if ifc.Flags&net.FlagUp != 0 && ifc.Flags&net.FlagLoopback == 0 {
			return true
		}
	}
	return false
}
