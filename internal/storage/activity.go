package storage

import (
	"encoding/json"

	"github.com/s/elearning/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecordActivity добавляет строку в журнал действий пользователя.
// Вызывающий сам решает, что делать с ошибкой: основной запрос
// из-за журнала падать не должен.
func RecordActivity(db *gorm.DB, userID, action string, details map[string]interface{}) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return err
	}

	entry := models.UserLog{
		UserID:  userID,
		Action:  action,
		Details: datatypes.JSON(payload),
	}
	return db.Create(&entry).Error
}
