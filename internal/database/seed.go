package database

import (
	"github.com/s/elearning/internal/models"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) error {
	db.FirstOrCreate(&models.Role{}, models.Role{ID: models.RoleUser, Name: "User"})
	db.FirstOrCreate(&models.Role{}, models.Role{ID: models.RoleAdmin, Name: "Admin"})
	return nil
}
