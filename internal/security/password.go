package security

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a password with bcrypt. Used for the operator
// (admin) credential only; learner passwords are stored verbatim by
// the progress store, per its contract.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
