package message

const (
	InvalidInput       = "Invalid input."
	UnsupportedContent = "Content-Type must be application/json."
	RequestCanceled    = "Request cancelled."
	RequestTimedOut    = "Request timed out."
)
