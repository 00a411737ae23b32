package services

import (
	"context"

	"anon-chat/backend/database"
	"anon-chat/backend/models"
)

// RoomService 負責聊天室的建立與列表
// 儲存介面由建構時注入，方便測試時替換成 mock
type RoomService struct {
	store database.Store
}

// NewRoomService 建立 RoomService
func NewRoomService(store database.Store) *RoomService {
	return &RoomService{store: store}
}

// CreateRoom 建立一個新的聊天室並回傳含有配發 ID 的結果
func (s *RoomService) CreateRoom(ctx context.Context, name string) (models.ChatRoom, error) {
	room := models.ChatRoom{Name: name}

	id, err := s.store.Insert(ctx, database.CollectionRooms, &room)
	if err != nil {
		return models.ChatRoom{}, err
	}

	room.ID = id
	return room, nil
}

// ListRooms 回傳所有聊天室
// 舊文件可能缺少 name 欄位，這裡統一補上預設名稱，不讓空值流出服務層
func (s *RoomService) ListRooms(ctx context.Context) ([]models.ChatRoom, error) {
	var rooms []models.ChatRoom
	if err := s.store.ListAll(ctx, database.CollectionRooms, &rooms); err != nil {
		return nil, err
	}

	for i := range rooms {
		if rooms[i].Name == "" {
			rooms[i].Name = models.DefaultRoomName
		}
	}
	return rooms, nil
}
