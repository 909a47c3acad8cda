package domain

import "golang.org/x/crypto/bcrypt"

func init() {
	// keep password hashing fast in tests
	hashCost = bcrypt.MinCost
}
