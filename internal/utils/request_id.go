package utils

// RequestIDHeader carries the id that ties a client call to the server log
// lines it produced.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 64

// ValidRequestID reports whether id may be echoed back and logged. Only
// short ids made of letters, digits, '-' and '_' are accepted.
func ValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
