package domain

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleModerator UserRole = "moderator"
	UserRoleUser      UserRole = "user"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

type UserGender string

const (
	UserGenderMale   UserGender = "male"
	UserGenderFemale UserGender = "female"
	UserGenderOther  UserGender = "other"
)

type User struct {
	ID             int32      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	PhoneNumber    string     `json:"phone_number"`
	PasswordHash   string     `json:"-"`
	DateOfBirth    *string    `json:"date_of_birth,omitempty"`
	YearOfBirth    int32      `json:"year_of_birth,omitempty"`
	Gender         UserGender `json:"gender"`
	Roles          []string   `json:"roles"`
	DeviceID       string     `json:"device_id,omitempty"`
	Status         UserStatus `json:"status"`
	UsedPromoCodes []string   `json:"used_promo_codes"`
	HasFreeSignup  bool       `json:"has_free_signup"`
	CreatedOn      string     `json:"created_on"`
	UpdatedOn      string     `json:"updated_on"`
}

// HasRole reports whether the user carries the given role tag.
func (u *User) HasRole(role UserRole) bool {
	for _, r := range u.Roles {
		if r == string(role) {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.HasRole(UserRoleAdmin)
}

// HasAdminAccess reports whether the user may enter the admin dashboard,
// i.e. holds either the admin or the moderator role.
func (u *User) HasAdminAccess() bool {
	return u.HasRole(UserRoleAdmin) || u.HasRole(UserRoleModerator)
}
