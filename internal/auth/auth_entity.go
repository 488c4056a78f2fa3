package auth

// Session is the signed-in user record persisted for the lifetime of one
// session. Role is carried for display only; nothing enforces it.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// account is one entry of the fixed demo catalog. This service has no
// real user store: the gate it feeds is advisory, not a security
// boundary, so the three demo accounts live in source the same way they
// do in the dashboard client.
type account struct {
	Email        string
	Name         string
	Role         string
	passwordHash []byte
}

type demoCredential struct {
	Email    string
	Name     string
	Role     string
	Password string
}

var demoCredentials = []demoCredential{
	{Email: "admin@hrpro.com", Name: "Admin User", Role: "admin", Password: "SecureAdmin@2024!"},
	{Email: "hr@hrpro.com", Name: "HR Manager", Role: "hr", Password: "HRManager#2024$"},
	{Email: "manager@hrpro.com", Name: "Team Manager", Role: "manager", Password: "TeamLead&2024%"},
}
