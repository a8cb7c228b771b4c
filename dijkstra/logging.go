// SPDX-License-Identifier: MIT

package dijkstra

import (
	"github.com/mandelsoft/logging"
)

// REALM is the logging realm of shortest-path runs.
var REALM = logging.DefineRealm("lvlpath/dijkstra", "shortest path search")

func defaultLogger() logging.Logger {
	return logging.DefaultContext().Logger(REALM)
}
