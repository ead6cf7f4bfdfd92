package errors

// ErrorCode identifies a failure class across the API surface.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	ErrorCode_TRANSCRIPT_UNSUPPORTED_FORMAT ErrorCode = 2000
	ErrorCode_TRANSCRIPT_INVALID_CONTENT    ErrorCode = 2001

	ErrorCode_EXTRACTION_API_FAILED     ErrorCode = 3000
	ErrorCode_EXTRACTION_EMPTY_RESPONSE ErrorCode = 3001
	ErrorCode_EXTRACTION_UNPARSABLE     ErrorCode = 3002
	ErrorCode_EXTRACTION_SCHEMA         ErrorCode = 3003

	ErrorCode_MEETING_NOT_FOUND     ErrorCode = 4000
	ErrorCode_MEETING_INVALID_EMAIL ErrorCode = 4001
	ErrorCode_MEETING_STORE_FAILED  ErrorCode = 4002

	ErrorCode_DELIVERY_FAILED        ErrorCode = 5000
	ErrorCode_DELIVERY_NO_RECIPIENTS ErrorCode = 5001
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                       "OK",
	ErrorCode_INTERNAL:                      "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:              "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                     "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:               "INVALID_PAYLOAD",
	ErrorCode_TRANSCRIPT_UNSUPPORTED_FORMAT: "TRANSCRIPT_UNSUPPORTED_FORMAT",
	ErrorCode_TRANSCRIPT_INVALID_CONTENT:    "TRANSCRIPT_INVALID_CONTENT",
	ErrorCode_EXTRACTION_API_FAILED:         "EXTRACTION_API_FAILED",
	ErrorCode_EXTRACTION_EMPTY_RESPONSE:     "EXTRACTION_EMPTY_RESPONSE",
	ErrorCode_EXTRACTION_UNPARSABLE:         "EXTRACTION_UNPARSABLE",
	ErrorCode_EXTRACTION_SCHEMA:             "EXTRACTION_SCHEMA",
	ErrorCode_MEETING_NOT_FOUND:             "MEETING_NOT_FOUND",
	ErrorCode_MEETING_INVALID_EMAIL:         "MEETING_INVALID_EMAIL",
	ErrorCode_MEETING_STORE_FAILED:          "MEETING_STORE_FAILED",
	ErrorCode_DELIVERY_FAILED:               "DELIVERY_FAILED",
	ErrorCode_DELIVERY_NO_RECIPIENTS:        "DELIVERY_NO_RECIPIENTS",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
