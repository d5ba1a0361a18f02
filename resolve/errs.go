package resolve

import "errors"

var ErrUnresolved = errors.New("unresolved identifier")
