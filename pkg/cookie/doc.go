// Package cookie signs cookie values with HMAC-SHA256 so a session token
// handed to the browser cannot be forged or swapped.
//
//	mgr, err := cookie.New([]string{secret})
//	mgr.SetSigned(w, "sid", token, cookie.WithMaxAge(seconds))
//	token, err := mgr.GetSigned(r, "sid")
package cookie
