package dom

import "errors"

var (
	ErrInvalidURL   = errors.New("dom.invalid_url")
	ErrParseFailed  = errors.New("dom.parse_failed")
	ErrRenderFailed = errors.New("dom.render_failed")
)
