package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors
const (
	// ErrCodeMissingCredential indicates a required API key or token is absent.
	ErrCodeMissingCredential ErrorCode = "MISSING_CREDENTIAL"
	// ErrCodeInvalidConfig indicates the loaded configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Input errors
const (
	// ErrCodeSampleNotFound indicates no audio sample was found in the input directory.
	ErrCodeSampleNotFound ErrorCode = "SAMPLE_NOT_FOUND"
	// ErrCodeInvalidSample indicates the audio sample could not be read or probed.
	ErrCodeInvalidSample ErrorCode = "INVALID_SAMPLE"
)

// Backend errors
const (
	// ErrCodeBackend indicates a transcription or diarization backend call failed.
	ErrCodeBackend ErrorCode = "BACKEND_ERROR"
	// ErrCodeUnexpectedShape indicates a backend returned a response that could not be decoded.
	ErrCodeUnexpectedShape ErrorCode = "UNEXPECTED_RESPONSE_SHAPE"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected harness failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeStorage indicates a result record could not be persisted.
	ErrCodeStorage ErrorCode = "STORAGE_ERROR"
)
