// Package dom provides the page-side collaborators of the query string and cookie
// helpers: Location, the address of the current page, and Document, an HTML page whose
// <a> elements can be enumerated and rewritten.
//
// Document is backed by golang.org/x/net/html. Anchor.Href resolves relative addresses
// against the page URL, so the query string helpers see absolute addresses just like
// script code in a browser does; SetHref writes the new address back into the tree and
// Render serialises the modified page.
package dom
