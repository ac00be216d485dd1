package errors

type ExitCode int

const (
	// Remote faults and call failures are reported on stdout and are not exit failures.
	SuccessExitCode ExitCode = 0

	GenericFailureExitCode = 1

	// Bad or conflicting flags
	UsageExitCode = 2

	// Unreadable config file, unresolvable or malformed endpoint
	ConfigFailureExitCode = 3

	// The value for a selector could not be read from stdin
	InputFailureExitCode = 4
)
