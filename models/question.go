package models

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	gorm.Model
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
	Choices      []Choice  `json:"choices" gorm:"foreignKey:QuestionID"`
	Comments     []Comment `json:"comments" gorm:"foreignKey:QuestionID"`
}

// Choice struct to represent each votable option under a question
type Choice struct {
	gorm.Model
	QuestionID uint   `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      uint   `json:"votes"` // Count of votes per choice
}

// Published scopes a query to questions whose publication date is not in
// the future. Listing and detail views must both go through it.
func Published(db *gorm.DB) *gorm.DB {
	return db.Where("pub_date <= ?", time.Now())
}
