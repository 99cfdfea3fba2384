package model

import "gorm.io/gorm"

const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:admin"` // admin / owner
}
