package response

const (
	// MessageSuccess is the message body for successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned for 500s instead of internal detail.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500
)
