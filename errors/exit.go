package errors

var exitCodes = map[ErrorCode]int{
	ErrCodePathUnavailable:       10,
	ErrCodeDirectoryCreateFailed: 11,
	ErrCodeBinaryNotFound:        12,
	ErrCodeSpawnFailed:           13,
	ErrCodeSidecarNotDeclared:    14,
	ErrCodeConfigNotFound:        20,
	ErrCodeConfigInvalid:         21,
	ErrCodeInvalidInput:          22,
}

// ExitCode maps err to the process exit status of a failed startup.
// Errors without a known code exit with 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := exitCodes[GetCode(err)]; ok {
		return code
	}
	return 1
}
