// Package auth models authorization as a capability check: handlers ask
// whether the caller's identity carries a required role before the rules
// layer is ever invoked.
package auth

import "crypto/subtle"

// Role is a named capability.
type Role string

const (
	// RoleUser is carried by every authenticated account.
	RoleUser Role = "USER"
	// RoleAdmin is required for all mutating operations.
	RoleAdmin Role = "ADMIN"
)

// Identity is an authenticated caller.
type Identity struct {
	Name  string
	Roles []Role
}

// HasRole reports whether the identity carries the given role.
func (id Identity) HasRole(role Role) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Authorizer resolves presented credentials to an identity.
type Authorizer interface {
	// Authenticate returns the identity for the credentials, or false
	// when they match no known account.
	Authenticate(username, password string) (Identity, bool)
}

type account struct {
	password string
	roles    []Role
}

// StaticAuthorizer authenticates against a fixed in-memory account set:
// a reader and an admin.
type StaticAuthorizer struct {
	accounts map[string]account
}

// NewStaticAuthorizer builds the authorizer from the two configured
// accounts.
func NewStaticAuthorizer(readUser, readPassword, adminUser, adminPassword string) *StaticAuthorizer {
	return &StaticAuthorizer{
		accounts: map[string]account{
			readUser:  {password: readPassword, roles: []Role{RoleUser}},
			adminUser: {password: adminPassword, roles: []Role{RoleUser, RoleAdmin}},
		},
	}
}

// Authenticate implements Authorizer. Password comparison is constant
// time.
func (a *StaticAuthorizer) Authenticate(username, password string) (Identity, bool) {
	acc, ok := a.accounts[username]
	if !ok {
		return Identity{}, false
	}
	if subtle.ConstantTimeCompare([]byte(acc.password), []byte(password)) != 1 {
		return Identity{}, false
	}
	return Identity{Name: username, Roles: acc.roles}, true
}
