// Package clientip resolves the address a request came from. Forwarding
// headers (CF-Connecting-IP, X-Forwarded-For, X-Real-IP) are honoured only
// when the server sits behind a proxy that sets them, see Config.TrustProxy.
package clientip
