package entities

// Role separates the platform owner from the resellers it manages.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleReseller Role = "revendedor"

	AdminIdentityID    = "admin"
	DefaultAdminName   = "Administrador"
	IdentityCookieName = "painelMasterUser"
)

// Identity is the authenticated principal kept in the session cookie.
// Plan and due-date fields are only populated for resellers.
type Identity struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"nome"`
	Role        Role   `json:"role"`
	PlanID      string `json:"planoId,omitempty"`
	DueDate     string `json:"dataVencimento,omitempty"`
	FirstAccess bool   `json:"primeiroAcesso,omitempty"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (i Identity) IsReseller() bool {
	return i.Role == RoleReseller
}

func (i Identity) IsZero() bool {
	return i.ID == "" || i.Role == ""
}

// IdentityPatch carries the fields a profile edit may change in place.
type IdentityPatch struct {
	Name        *string
	DueDate     *string
	FirstAccess *bool
}

// Merge applies p over i and returns the result.
func (i Identity) Merge(p IdentityPatch) Identity {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.DueDate != nil {
		i.DueDate = *p.DueDate
	}
	if p.FirstAccess != nil {
		i.FirstAccess = *p.FirstAccess
	}
	return i
}
