package tapedeck

import (
	"fmt"
	"os"
)

// debugLogf prints a diagnostic line to stderr when the panel's debug flag
// is set. Hot paths guard the call themselves to avoid building arguments.
func (p *Panel) debugLogf(format string, args ...any) {
	if !p.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[tapedeck] "+format+"\n", args...)
}
