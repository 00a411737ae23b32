package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage 代表一則聊天訊息
// RoomID 一律儲存為 ObjectID（寫入與查詢使用同一種表示法），
// JSON 序列化時 ObjectID 會輸出為十六進位字串，對外格式不變
type ChatMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RoomID    primitive.ObjectID `bson:"room_id" json:"room_id"`
	Username  string             `bson:"username" json:"username"` // 任意顯示名稱，無驗證語義
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// DefaultCreatedAt 在 created_at 尚未設定時補上建立時間
func (m *ChatMessage) DefaultCreatedAt(now time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
}
