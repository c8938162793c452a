// Description: Defines the User model and its fields.
package models

import "gorm.io/gorm"

type User struct {
	gorm.Model        // Adds fields ID, CreatedAt, UpdatedAt, DeletedAt
	Username   string `json:"username" gorm:"unique"`
	Email      string `json:"email"`
	Password   string `json:"-"`
}
