package errors

import "fmt"

var (
	ErrKeyNotFound    = fmt.Errorf("key not found")
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrUnknownBackend = fmt.Errorf("unknown store backend")
)
