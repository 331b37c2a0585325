package roles

import "github.com/google/uuid"

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
	RoleEditor     Role = "editor"
	RoleAuthor     Role = "author"
	RoleReader     Role = "reader"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleEditor, RoleAuthor, RoleReader:
		return true
	}
	return false
}

// Staff reports whether r carries moderation/management capability.
func (r Role) Staff() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleEditor:
		return true
	}
	return false
}

// Principal is the authenticated caller attached to a request by the auth
// middleware. ProfileUUID is the stable public identifier shared between
// the user account and its profile; ownership checks on profile-authored
// content compare against it rather than the raw account id.
type Principal struct {
	UserID      uuid.UUID
	ProfileUUID string
	Username    string
	Email       string
	Role        Role
}

// IsStaff reports whether p may moderate content and manage others'
// resources.
func (p *Principal) IsStaff() bool {
	return p != nil && p.Role.Staff()
}

// CanManage reports whether p is staff or owns the resource identified by
// ownerID.
func (p *Principal) CanManage(ownerID uuid.UUID) bool {
	if p == nil {
		return false
	}
	return p.IsStaff() || p.UserID == ownerID
}
