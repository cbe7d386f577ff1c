package model

// Role is the single place role-based capabilities are decided. Handlers
// ask the role, never compare strings themselves.
type Role string

const (
	RoleDosen        Role = "dosen"
	RoleAdminLab     Role = "admin_lab"
	RoleAdminJurusan Role = "admin_jurusan"
)

// CanSubmitRequests reports whether the role may create, edit and delete
// its own procurement requests.
func (r Role) CanSubmitRequests() bool {
	return r == RoleDosen || r == RoleAdminLab
}

// CanReviewRequests reports whether the role may approve or reject
// procurement requests.
func (r Role) CanReviewRequests() bool {
	return r == RoleAdminJurusan
}

// SeesAllRequests reports whether the role sees every request in listings.
// Other roles only see their own.
func (r Role) SeesAllRequests() bool {
	return r == RoleAdminJurusan
}
