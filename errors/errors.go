package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrUnsupportedFormat = fmt.Errorf("unsupported file format")
	ErrSchemaViolation   = fmt.Errorf("required columns are missing")
	ErrGeneration        = fmt.Errorf("text generation failed")
	ErrDelivery          = fmt.Errorf("email delivery failed")
	ErrEmptyBlocklist    = fmt.Errorf("no blocklist words have been found")
)
