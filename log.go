package rpnresolver

import "github.com/rs/zerolog"

// logger receives the conversion and evaluation traces. It discards
// everything until SetLogger installs a real logger.
var logger = zerolog.Nop()

// SetLogger directs the package's debug traces to l. The package logs the
// shunting-yard scan at trace level and conversions and assignments at
// debug level, and is silent by default; pass zerolog.Nop() to silence it
// again.
func SetLogger(l zerolog.Logger) {
	logger = l
}
