package expand

import (
	"time"
)

// DefaultLimit is the occurrence ceiling applied when the caller does not
// choose one. It guarantees that expanding an unbounded rule terminates.
const DefaultLimit = 366

// Options controls how occurrence expansion behaves.
type Options struct {
	Until *time.Time // stop after this date; occurrences on it are kept
	Limit int        // result ceiling; a value <= 0 yields no occurrences
}

// DefaultOptions provides sensible defaults for expansion.
var DefaultOptions = Options{
	Limit: DefaultLimit,
}
