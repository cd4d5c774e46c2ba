// Package pairs extracts values from delimited key/value strings such as a cookie header
// ("a=1; b=2") or a query string ("a=1&b=2").
package pairs
