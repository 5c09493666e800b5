// Package accounts stores accounts and verifies credentials for the login
// and signup APIs. Passwords are kept as bcrypt hashes. Error values carry
// the exact text the API returns to the page.
package accounts
