// Package cookie reads and writes first-party cookies through a page's cookie store.
//
// Store is the page-side interface: a single string that reads as the header of every
// visible cookie ("a=1; b=2") and is written one cookie at a time
// ("a=1;path=/;expires=..."). Jar implements it the way a browser does for one page,
// using net/http/cookiejar with the public suffix list from golang.org/x/net so domain,
// path, secure and expiry attributes are honoured.
//
// Manager is the entry point:
//
//   - Enabled() - probes the store with a throwaway cookie
//   - Get(), GetRaw() - first value of a cookie, decoded or as stored
//   - Set() - writes name=value with path=/ and optional domain, days, secure, samesite
//   - Delete() - expires a cookie and confirms it is gone
//
// # Usage
//
//	page, _ := url.Parse("https://www.example.com/")
//	jar, _ := cookie.NewJar(page)
//	man := cookie.New(jar, validator.NewChecker(log), cookie.WithSameSite("Lax"))
//
//	if _, err := man.Set("theme", "dark", cookie.WithDays(30)); err != nil {
//	    log.Warn(cookie.Message(err))
//	}
//	theme := man.Get("theme") // "dark"
//
// # Configuration
//
// Config carries the default attributes and is filled from the environment
// (COOKIE_DOMAIN, COOKIE_DAYS, COOKIE_SECURE, COOKIE_SAME_SITE) by pkg/config.
//
// # Error Handling
//
// Invalid names are logged by the validator and reported as
// validator.ErrInvalidParameter. ErrCookiesDisabled, ErrOperationFailed and
// ErrNotDeleted describe writes the store refused or did not apply; Message turns them
// into the texts shown to users. Set and Delete return synchronously; there are no
// callbacks.
package cookie
