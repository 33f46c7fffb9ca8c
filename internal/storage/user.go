package storage

import (
	"errors"

	"github.com/s/elearning/internal/models"
	"gorm.io/gorm"
)

// SaveUser finds a user by provider ID; if found, it updates, otherwise, it creates.
func SaveUser(db *gorm.DB, userInfo models.User) (string, error) {
	var existingUser models.User

	result := db.Where("id = ?", userInfo.ID).First(&existingUser)

	if result.Error == nil {
		// --- CASE 1: USER FOUND (UPDATE) ---
		// User exists, update their details (name, picture, etc.)
		updates := map[string]interface{}{
			"email":   userInfo.Email,
			"name":    userInfo.Name,
			"picture": userInfo.Picture,
			// DO NOT update RoleID here, as that is managed by an admin
		}

		db.Model(&existingUser).Updates(updates)
		return existingUser.ID, nil

	} else if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// --- CASE 2: USER NOT FOUND (CREATE) ---
		userInfo.RoleID = models.RoleUser

		if err := db.Create(&userInfo).Error; err != nil {
			return "", err
		}
		return userInfo.ID, nil

	} else {
		// --- CASE 3: DATABASE ERROR ---
		return "", result.Error
	}
}
