package db_models

type Role string

const (
	RoleStudent Role = "student"
	RoleCook    Role = "cook"
	RoleAdmin   Role = "admin"
)

// NormalizeRole maps legacy/localized role spellings onto the closed enum.
// Anything unrecognized registers as a student.
func NormalizeRole(raw string) Role {
	switch raw {
	case "student", "ученик":
		return RoleStudent
	case "cook", "поваренок":
		return RoleCook
	case "admin", "администратор":
		return RoleAdmin
	default:
		return RoleStudent
	}
}

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string
	Role         Role   `gorm:"size:20;index"`
	Allergies    string `gorm:"type:text"`
}
