// Package auth implements the credential and token layer of wardline.
//
// Staff log in with an (email, password, role) tuple. The pair (email, role)
// is the lookup key into the registry, so knowing a valid password is not
// enough if the role claimed at login does not match the stored record.
// Passwords are only ever compared through bcrypt, the stored hash never
// leaves this package's lookup path.
//
// A successful login produces a signed token (HMAC-SHA256 JWT) carrying the
// staff id, email and role. Tokens live for 24 hours and the server keeps no
// record of which tokens are outstanding: a token is valid iff its signature
// verifies under the current secret and it has not expired. There is no
// revocation list, so a token issued for a staff record that was later
// removed keeps working until it expires. Keep that in mind before handing
// the secret a long lifetime.
//
// The gate in auth/api checks token validity only. Role-scoped authorization
// per endpoint does not exist anywhere in the system: any authenticated
// staff member, whatever the role, can call every protected endpoint.
package auth
