package domain

import "errors"

// 业务级哨兵错误：邮箱唯一冲突是可恢复错误，不是存储故障
var ErrDuplicateEmail = errors.New("email already registered")

// User 即 users 表的一行。创建后不可变，只能整行删除（无软删）
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	FirstName    string `gorm:"size:64;not null" json:"first_name"`
	LastName     string `gorm:"size:64;not null" json:"last_name"`
	PasswordHash string `gorm:"size:100;not null" json:"-"`
}

func (User) TableName() string { return "users" }

// UserStore 持久层契约：查不到返回 (nil, nil)，error 只留给真正的存储故障
type UserStore interface {
	Create(u *User) error
	// Delete 返回是否真的删掉了一行；0 行受影响不算错误
	Delete(id uint) (bool, error)
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
	ListAll() ([]User, error)
}
