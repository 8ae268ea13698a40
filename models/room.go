package models

type Room struct {
	ID         int64   `json:"id" gorm:"primaryKey;column:id"`
	RoomNumber string  `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	RoomType   string  `json:"roomType" gorm:"column:room_type;type:varchar(50)"`
	Floor      *int    `json:"floor,omitempty" gorm:"column:floor"`
	Note       *string `json:"note,omitempty" gorm:"column:note;type:text"`
	IsActive   bool    `json:"isActive" gorm:"column:is_active;default:true"`
}

func (Room) TableName() string { return "rooms" }
