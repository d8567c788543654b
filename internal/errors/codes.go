package errors

// Code classifies an Error
type Code string

// Error codes used by the engine, the repositories and the CLI
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// exitCodes follows the sysexits.h conventions where one fits
var exitCodes = map[Code]int{
	CodeOK:                 0,
	CodeInternal:           1,
	CodeInvalidArgument:    64, // EX_USAGE
	CodeNotFound:           66, // EX_NOINPUT
	CodeUnavailable:        69, // EX_UNAVAILABLE
	CodeFailedPrecondition: 78, // EX_CONFIG
	CodeCanceled:           130,
}

func (c Code) String() string {
	return string(c)
}

// ExitCode is the process status the melee CLI exits with for c.
// Unknown codes exit 1.
func (c Code) ExitCode() int {
	if n, ok := exitCodes[c]; ok {
		return n
	}
	return 1
}
