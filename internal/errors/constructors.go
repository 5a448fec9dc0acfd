package errors

// Convenience functions for common error patterns

// Config errors

func ConfigLoadFailed(path string, cause error) *CratedocError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "failed to load configuration").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *CratedocError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Filesystem errors

func DocDirMissing(path string) *CratedocError {
	return New(CategoryFileSystem, SeverityFatal, "documentation directory does not exist").
		WithContext("path", path)
}

func CleanFailed(path string, cause error) *CratedocError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "failed to remove documentation directory").
		WithContext("path", path)
}

func HeaderMissing(path string) *CratedocError {
	return New(CategoryFileSystem, SeverityFatal, "header injection file does not exist").
		WithContext("path", path)
}

// Tool errors

func ToolNotFound(tool string, cause error) *CratedocError {
	return Wrap(cause, CategoryTool, SeverityFatal, "documentation tool not found in PATH").
		WithContext("tool", tool)
}

func ToolFailed(tool string, exitCode int, cause error) *CratedocError {
	return Wrap(cause, CategoryTool, SeverityFatal, "documentation tool exited with error").
		WithContext("tool", tool).
		WithContext("exit_code", exitCode)
}

// Internal errors

func InternalError(message string, cause error) *CratedocError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
