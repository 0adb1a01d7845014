package models

// UserModel represents the database persistence model for users.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID             string `gorm:"primaryKey;size:32"`
	Name           string `gorm:"size:32;not null"`
	HashedPassword string `gorm:"size:255;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
