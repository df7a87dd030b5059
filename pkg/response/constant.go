package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ErrorCodeBadRequest      = 1
	ErrorCodeTooManyRequests = 429
	InternalServerErrorCode  = 500
)
