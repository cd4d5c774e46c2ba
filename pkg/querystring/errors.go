package querystring

import "errors"

var (
	// ErrAppendFailed wraps a failure raised while rewriting link addresses.
	ErrAppendFailed = errors.New("querystring.append_failed")
	// ErrNoLinks is returned by AppendTo when it is given no link collection.
	ErrNoLinks = errors.New("querystring.no_links")
)

// MsgAppended is returned by AppendTo on success.
const MsgAppended = "Querystring appended."
