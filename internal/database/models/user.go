package models

// Role identifies which route family a user may access
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSpoc       Role = "SPOC"
	RoleTeamLeader Role = "TEAM_LEADER"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSpoc, RoleTeamLeader:
		return true
	}
	return false
}

// User represents an account: admin, institutional SPOC or team leader.
// SPOCs start unverified and cannot log in until an admin verifies them.
type User struct {
	BaseModel
	Name         string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"column:password;not null;size:100"`
	Role         Role   `json:"role" gorm:"type:varchar(20);not null;default:'TEAM_LEADER'" validate:"required"`
	Verified     bool   `json:"verified" gorm:"not null;default:false"`
	Phone        string `json:"phone" gorm:"size:20"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
