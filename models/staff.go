package models

import "time"

type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string    `gorm:"size:255" json:"name"`
	Dept     string    `gorm:"size:100" json:"dept"`
	Age      int       `json:"age"`
	Contact  string    `gorm:"size:100" json:"contact"`
	Salary   float64   `json:"salary"`
	JoinDate time.Time `gorm:"column:join_date" json:"joinDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
