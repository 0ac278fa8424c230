package curves

import "errors"

// ErrUnsupportedSystem indicates that no fan curve is registered for the
// vendor/version pair reported by the mainboard.
var ErrUnsupportedSystem = errors.New("unsupported system")
