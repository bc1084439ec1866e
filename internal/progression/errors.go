package progression

import "errors"

var (
	ErrMissingTemplate  = errors.New("program template cannot be resolved")
	ErrIndexOutOfRange  = errors.New("template slot index out of range")
	ErrStoreUnavailable = errors.New("completion record store unavailable")
	ErrProgramComplete  = errors.New("program already complete")
	ErrUnknownSession   = errors.New("session not part of the program template")
)
