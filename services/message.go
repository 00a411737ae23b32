package services

import (
	"context"
	"errors"

	"anon-chat/backend/database"
	"anon-chat/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultMessageLimit 是 GetMessages 未指定筆數上限時的預設值
const DefaultMessageLimit = 50

// MessageService 負責訊息的寫入與歷史查詢
type MessageService struct {
	store database.Store
}

// NewMessageService 建立 MessageService
func NewMessageService(store database.Store) *MessageService {
	return &MessageService{store: store}
}

// SendMessage 驗證目標聊天室存在後寫入一則訊息，回傳配發的訊息 ID
//
// 聊天室與訊息之間的參照完整性只在這裡檢查（寫入當下存在即可），
// 儲存端沒有跨集合的約束；由於聊天室沒有刪除路徑，這個檢查不會失效
func (s *MessageService) SendMessage(ctx context.Context, roomID, username, content string) (primitive.ObjectID, error) {
	id, err := ParseRoomID(roomID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	var room models.ChatRoom
	err = s.store.FindOne(ctx, database.CollectionRooms, bson.M{"_id": id}, &room)
	if errors.Is(err, database.ErrNotFound) {
		return primitive.NilObjectID, ErrRoomNotFound
	}
	if err != nil {
		return primitive.NilObjectID, err
	}

	msg := models.ChatMessage{
		RoomID:   id,
		Username: username,
		Content:  content,
	}
	return s.store.Insert(ctx, database.CollectionMessages, &msg)
}

// GetMessages 回傳指定聊天室最近 limit 則訊息，依時間由舊到新排序
// limit 小於等於 0 時使用 DefaultMessageLimit
func (s *MessageService) GetMessages(ctx context.Context, roomID string, limit int64) ([]models.ChatMessage, error) {
	id, err := ParseRoomID(roomID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultMessageLimit
	}

	// 先用 created_at 降冪取出最近的 limit 筆，再反轉成由舊到新
	// 時間戳相同的訊息之間的相對順序由儲存端決定
	var messages []models.ChatMessage
	err = s.store.Find(ctx, database.CollectionMessages,
		bson.M{"room_id": id},
		bson.D{{Key: "created_at", Value: -1}},
		limit, &messages)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
