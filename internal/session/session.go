package session

// Role is the platform role carried in the user profile
type Role string

// Platform roles
const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleLiveAgent  Role = "live_agent"
)

// DashboardPath returns the web dashboard path for a role. Unrecognized
// roles fall back to the generic dashboard.
func (r Role) DashboardPath() string {
	switch r {
	case RoleSuperAdmin:
		return "/superadmin/dashboard"
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleUser:
		return "/user/dashboard"
	case RoleLiveAgent:
		return "/liveagent/dashboard"
	default:
		return "/dashboard"
	}
}

// User is the profile snapshot returned by the login endpoint and persisted
// alongside the access token
type User struct {
	ID         int64   `json:"user_id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Role       Role    `json:"role"`
	Age        int     `json:"age,omitempty"`
	DomaineID  int64   `json:"domaine_id,omitempty"`
	PackageID  int64   `json:"package_id,omitempty"`
	SoldeTotal float64 `json:"solde_total"`
	Active     bool    `json:"active,omitempty"`
	Deleted    bool    `json:"deleted,omitempty"`
}

// Session is the persisted credential pair. AccessToken and User are always
// written together; a session with one but not the other never reaches disk.
type Session struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"userData"`
}
