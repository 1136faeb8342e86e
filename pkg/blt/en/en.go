package en

import (
	"fmt"
	"strings"

	"github.com/michaelcowan/blt-core/pkg/blt"
)

// Of returns the first candidate in values whose String() equals name, or an
// absent Optional when none matches. A nil or empty values slice never
// matches.
func Of[E fmt.Stringer](values []E, name string) blt.Optional[E] {
	for _, v := range values {
		if v.String() == name {
			return blt.Some(v)
		}
	}
	return blt.None[E]()
}

// OfIgnoreCase is [Of] with case-insensitive name matching.
func OfIgnoreCase[E fmt.Stringer](values []E, name string) blt.Optional[E] {
	for _, v := range values {
		if strings.EqualFold(v.String(), name) {
			return blt.Some(v)
		}
	}
	return blt.None[E]()
}
