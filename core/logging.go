// SPDX-License-Identifier: MIT

package core

import (
	"github.com/mandelsoft/logging"
)

// REALM is the logging realm of graph construction.
var REALM = logging.DefineRealm("lvlpath/core", "graph model and builder")

// defaultLogger resolves the realm logger at call time so that rules added
// to the default context after package init are honored.
func defaultLogger() logging.Logger {
	return logging.DefaultContext().Logger(REALM)
}
