package model

import "time"

type ProductQuestion struct {
	ProductQuestionID string    `gorm:"column:product_question_id;type:uuid;primaryKey" json:"product_question_id"`
	ProductID         string    `gorm:"column:product_id;type:uuid;index;not null" json:"product_id"`
	UserID            string    `gorm:"column:user_id;type:uuid;index;not null" json:"user_id"`
	Question          string    `gorm:"type:text;not null" json:"question"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 1つの質問に対してベンダーの回答は1件まで。
type ProductAnswer struct {
	ProductAnswerID string    `gorm:"column:product_answer_id;type:uuid;primaryKey" json:"product_answer_id"`
	QuestionID      string    `gorm:"column:question_id;type:uuid;uniqueIndex;not null" json:"question_id"`
	VendorID        string    `gorm:"column:vendor_id;type:uuid;index;not null" json:"vendor_id"`
	Answer          string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
