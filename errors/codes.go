package errors

// ErrorCode identifies an application error category. Codes are stable:
// values are part of the API contract and must not be renumbered.
type ErrorCode int32

const (
	ErrorCode_UNKNOWN           ErrorCode = 0
	ErrorCode_INTERNAL          ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 2
	ErrorCode_NOT_FOUND         ErrorCode = 3
	ErrorCode_ALREADY_EXISTS    ErrorCode = 4
	ErrorCode_PERMISSION_DENIED ErrorCode = 5
	ErrorCode_UNAUTHENTICATED   ErrorCode = 6
	ErrorCode_FORBIDDEN         ErrorCode = 7
	ErrorCode_HTTP_OK           ErrorCode = 8

	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = 100
	ErrorCode_AUTH_TOKEN_EXPIRED ErrorCode = 101

	ErrorCode_DOCUMENT_READ_FAILED ErrorCode = 200
	ErrorCode_DOCUMENT_EMPTY       ErrorCode = 201
	ErrorCode_EXTRACTION_FAILED    ErrorCode = 202
	ErrorCode_INGEST_FAILED        ErrorCode = 203

	ErrorCode_LLM_REQUEST_FAILED      ErrorCode = 300
	ErrorCode_LLM_SERVICE_UNAVAILABLE ErrorCode = 301
	ErrorCode_LLM_QUOTA_EXCEEDED      ErrorCode = 302
	ErrorCode_TRANSCRIPTION_FAILED    ErrorCode = 303

	ErrorCode_REPORT_GENERATION_FAILED ErrorCode = 400
	ErrorCode_EXPORT_FAILED            ErrorCode = 401
	ErrorCode_GITHUB_FAILED            ErrorCode = 402

	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 500
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 501
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 502

	ErrorCode_DB_CONNECTION_FAILED    ErrorCode = 600
	ErrorCode_DB_QUERY_FAILED         ErrorCode = 601
	ErrorCode_DB_TRANSACTION_FAILED   ErrorCode = 602
	ErrorCode_DB_CONSTRAINT_VIOLATION ErrorCode = 603

	ErrorCode_INVALID_PAYLOAD   ErrorCode = 700
	ErrorCode_MISSING_AUDIO_URL ErrorCode = 701
	ErrorCode_PROCESSING_FAILED ErrorCode = 702
	ErrorCode_JOB_SUBMIT_FAILED ErrorCode = 703
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:           "UNKNOWN",
	ErrorCode_INTERNAL:          "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:  "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:         "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:    "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED: "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:   "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:         "FORBIDDEN",
	ErrorCode_HTTP_OK:           "HTTP_OK",

	ErrorCode_AUTH_INVALID_TOKEN: "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED: "AUTH_TOKEN_EXPIRED",

	ErrorCode_DOCUMENT_READ_FAILED: "DOCUMENT_READ_FAILED",
	ErrorCode_DOCUMENT_EMPTY:       "DOCUMENT_EMPTY",
	ErrorCode_EXTRACTION_FAILED:    "EXTRACTION_FAILED",
	ErrorCode_INGEST_FAILED:        "INGEST_FAILED",

	ErrorCode_LLM_REQUEST_FAILED:      "LLM_REQUEST_FAILED",
	ErrorCode_LLM_SERVICE_UNAVAILABLE: "LLM_SERVICE_UNAVAILABLE",
	ErrorCode_LLM_QUOTA_EXCEEDED:      "LLM_QUOTA_EXCEEDED",
	ErrorCode_TRANSCRIPTION_FAILED:    "TRANSCRIPTION_FAILED",

	ErrorCode_REPORT_GENERATION_FAILED: "REPORT_GENERATION_FAILED",
	ErrorCode_EXPORT_FAILED:            "EXPORT_FAILED",
	ErrorCode_GITHUB_FAILED:            "GITHUB_FAILED",

	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",

	ErrorCode_DB_CONNECTION_FAILED:    "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:         "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED:   "DB_TRANSACTION_FAILED",
	ErrorCode_DB_CONSTRAINT_VIOLATION: "DB_CONSTRAINT_VIOLATION",

	ErrorCode_INVALID_PAYLOAD:   "INVALID_PAYLOAD",
	ErrorCode_MISSING_AUDIO_URL: "MISSING_AUDIO_URL",
	ErrorCode_PROCESSING_FAILED: "PROCESSING_FAILED",
	ErrorCode_JOB_SUBMIT_FAILED: "JOB_SUBMIT_FAILED",
}

// String returns the stable name for the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
