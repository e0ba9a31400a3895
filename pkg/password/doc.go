// Package password hashes and verifies passwords with bcrypt.
//
//	hash, err := password.Hash(input)
//	...
//	if err := password.Compare(hash, attempt); errors.Is(err, password.ErrPasswordMismatch) {
//		return core.ErrUnauthorized
//	}
package password
