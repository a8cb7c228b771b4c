// SPDX-License-Identifier: MIT

package dfs

import (
	"github.com/mandelsoft/logging"
)

// REALM is the logging realm of path enumeration.
var REALM = logging.DefineRealm("lvlpath/dfs", "all simple paths enumeration")

func defaultLogger() logging.Logger {
	return logging.DefaultContext().Logger(REALM)
}
