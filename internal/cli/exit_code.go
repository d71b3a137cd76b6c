package cli

import "errors"

// Process exit statuses. Anything that fails after the config is accepted,
// such as a robots.txt or marker write, exits with ExitFailure.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError tags an error with the status the process should exit with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// usageError marks bad flags, env files and config as ExitUsage.
func usageError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: ExitUsage, Err: err}
}

// failureError marks errors raised while writing SEO state as ExitFailure.
func failureError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: ExitFailure, Err: err}
}

// ExitCode maps err to a process exit status. Untagged errors, including
// cobra's own argument errors, exit with ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var coded *ExitError
	if errors.As(err, &coded) && coded.Code > ExitOK {
		return coded.Code
	}
	return ExitFailure
}
