// Package model holds the GORM row types for the relational store.
package model

import "time"

// RecipeModel mirrors the 'recipes' table. The id is assigned by the database.
// Ingredients and directions are stored as JSON arrays in text columns so the
// same schema works on PostgreSQL and SQLite. NameKey and CategoryKey hold the
// lower-cased name and category that searches compare against.
type RecipeModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Owner       string    `gorm:"type:varchar(255);not null;index"`
	Name        string    `gorm:"type:text;not null"`
	NameKey     string    `gorm:"type:text;not null"`
	Category    string    `gorm:"type:text;not null"`
	CategoryKey string    `gorm:"type:text;not null;index"`
	Date        time.Time `gorm:"not null;index"`
	Description string    `gorm:"type:text;not null"`
	Ingredients []string  `gorm:"type:text;not null;serializer:json"`
	Directions  []string  `gorm:"type:text;not null;serializer:json"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
