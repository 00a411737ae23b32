package services

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseRoomID 將外部傳入的聊天室 ID 字串解析成內部使用的 ObjectID
// 只接受完整合法的 24 位十六進位字串，格式錯誤回傳 ErrInvalidRoomID
func ParseRoomID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidRoomID, raw)
	}
	return id, nil
}
