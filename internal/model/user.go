package model

import "time"

// User 管理后台用户模型
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id" firestore:"id"`
	Username  string    `gorm:"size:255;not null;uniqueIndex;comment:用户名" json:"username" firestore:"username"`
	Password  string    `gorm:"size:255;not null;comment:密码哈希" json:"-" firestore:"password"` // json:"-" 序列化时忽略密码
	IsAdmin   bool      `gorm:"not null;default:false;comment:管理员标识" json:"isAdmin" firestore:"isAdmin"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:创建时间" json:"createdAt" firestore:"createdAt"`

	// 关联关系
	Comments []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty" firestore:"-"`
}

func (User) TableName() string {
	return "users"
}
