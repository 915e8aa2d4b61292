package models

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	NIM   string `json:"nim"` // nomor induk mahasiswa, minimal 8 digit

	PasswordHash string `json:"passwordHash"`
	IsVerified   bool   `json:"isVerified"`
	Role         Role   `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
