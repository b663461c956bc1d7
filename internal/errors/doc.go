// Package errors provides typed errors with exit codes for forage-build.
//
// # Error Types
//
// ForageError is the base error type that wraps an error with an exit code:
//
//	type ForageError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess                  = 0 // Success
//	ExitGeneralError             = 1 // General/unknown errors
//	ExitUnknownProjectType       = 2 // No classifier rule matched
//	ExitMissingStartCommand      = 3 // Node project has no start invocation
//	ExitMissingBuildOutput       = 4 // Expected build output directory is absent
//	ExitMissingExecutable        = 5 // Expected executable is absent
//	ExitUnsupportedProjectType   = 6 // Recognized type without a strategy yet
//	ExitUnsupportedConfiguration = 7 // Recognized but intentionally unsupported
//	ExitConfigError              = 8 // Tool configuration error
//	ExitScriptWriteFailed        = 9 // Build script could not be written
//
// # Error Constructors
//
//	errors.UnknownProjectType("/src/app")
//	errors.MissingStartCommand("/src/app")
//	errors.UnsupportedProjectType("python", "Python support is coming soon")
//	errors.ScriptWriteFailed("/src/app", err)
//
// None of these errors are retryable: they describe static folder content.
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
