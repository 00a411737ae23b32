package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultRoomName 是當資料庫文件缺少 name 欄位時使用的預設名稱
const DefaultRoomName = "Room"

// ChatRoom 代表一個聊天室的元資料
// name 不要求唯一；聊天室建立後不會被修改或刪除
type ChatRoom struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// DefaultCreatedAt 在 created_at 尚未設定時補上建立時間
// 由 database.Store 的 Insert 在寫入前呼叫
func (r *ChatRoom) DefaultCreatedAt(now time.Time) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
}
