// Package account is the web front of authforms: login and signup pages,
// the live password strength meter, and the JSON API the pages submit to.
//
// Pages work with and without JavaScript. A plain form post gets the page
// back with the first invalid field marked. A DataStar post gets signal
// patches instead: the field is highlighted, the message shown, and the
// highlight removed again after Config.ErrorFlashDuration.
//
//	mod := account.New(cfg, accountsSvc, sessions, account.WithLogger(log))
//	r.Mount("/", mod.Handle())
package account
