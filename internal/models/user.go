package models

// User — учетная запись, которую ведет внешний Identity Provider (Google).
// ID строковый: это стабильный идентификатор субъекта у провайдера.
type User struct {
	ID      string `gorm:"primaryKey;size:64" json:"id"`
	Email   string `gorm:"uniqueIndex;size:255" json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	RoleID  uint   `json:"role_id"`
	Role    Role   `gorm:"foreignKey:RoleID" json:"-"`
}
