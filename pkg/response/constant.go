package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500

	// DateFormat is the wire format for date-only values.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for instants, always UTC with
	// millisecond precision.
	DateTimeFormat = "2006-01-02T15:04:05.000Z"
)
