// Package session tracks signed-in accounts.
//
// Login calls Manager.Create, which stores a Session under a random token
// and hands the token to the browser in a signed cookie. Middleware
// resolves the cookie on later requests. A session is usable while it is
// marked valid and is younger than its lifetime (180 days by default);
// stale sessions are deleted the first time they are looked up.
package session
