package models

import "gorm.io/gorm"

// Comment text is stored verbatim; escaping happens when templates render it.
type Comment struct {
	gorm.Model
	QuestionID  uint   `json:"question_id"`
	CommentText string `json:"comment_text"`
}
