package derive

import (
	"fmt"
	"strings"
)

// Extract isolates the declared name from a signature text made by [Probe].
//
// The qualified name follows the object kind keyword. The name starts after
// the last '.' of the qualified name and ends at the next ' ' or at the end of
// the text. The returned string does not share memory with sig.
//
// Extract panics if sig is not a signature text.
func Extract(sig string) string {
	_, qualified, ok := strings.Cut(sig, " ")
	if !ok {
		panic(fmt.Sprintf("malformed signature: %q", sig))
	}
	qualified, _, _ = strings.Cut(qualified, " ")

	name := qualified[strings.LastIndexByte(qualified, '.')+1:]
	if name == "" {
		panic(fmt.Sprintf("malformed signature: %q", sig))
	}
	return strings.Clone(name)
}
