package cookie

import "errors"

var (
	ErrCookiesDisabled = errors.New("cookie.disabled")
	ErrOperationFailed = errors.New("cookie.operation_failed")
	ErrNotDeleted      = errors.New("cookie.not_deleted")
	ErrUnsupportedPage = errors.New("cookie.unsupported_page")
)

// MsgDeleted is returned by Delete on success.
const MsgDeleted = "Cookie deleted."

// Message returns the user-facing text for the errors returned by Set and Delete.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCookiesDisabled):
		return "Cookies disabled."
	case errors.Is(err, ErrOperationFailed):
		return "Operation failed."
	case errors.Is(err, ErrNotDeleted):
		return "Cookie was not deleted."
	}
	return err.Error()
}
