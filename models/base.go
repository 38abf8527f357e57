package models

import "time"

// SingletonID is the reserved primary key of single-instance records (Profile, SiteSettings).
const SingletonID uint = 1

// BaseModel is embedded by every top-level table.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" form:"-"`
	CreatedAt time.Time `gorm:"index" form:"-"`
	UpdatedAt time.Time `form:"-"`
}

func (b *BaseModel) GetID() uint       { return b.ID }
func (b *BaseModel) SetID(id uint)     { b.ID = id }
func (b *BaseModel) Base() *BaseModel { return b }

// Record is satisfied by pointers to models that embed BaseModel.
type Record interface {
	GetID() uint
	SetID(id uint)
}
