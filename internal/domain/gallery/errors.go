package gallery

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown gallery category")
	ErrGalleryClosed   = errors.New("gallery closed")
)
