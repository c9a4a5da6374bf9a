package entity

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleUser   UserRole = "user"
	RoleRenter UserRole = "renter"
)

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	Tel          *string  `db:"tel"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	Coin         int64    `db:"coin"`
}
