package content

import "errors"

var ErrUnknownSection = errors.New("unknown content section")
