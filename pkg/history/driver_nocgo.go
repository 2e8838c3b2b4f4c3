//go:build !cgo

package history

import _ "modernc.org/sqlite"

const driverName = "sqlite"
