package handlers

import (
	"encoding/json"
	"net/http"

	"anon-chat/backend/models"
)

// CreateRoomRequest 定義建立聊天室的請求體
type CreateRoomRequest struct {
	Name string `json:"name"`
}

// RoomResponse 是聊天室的對外表示
type RoomResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toRoomResponse(room models.ChatRoom) RoomResponse {
	return RoomResponse{
		ID:   room.ID.Hex(),
		Name: room.Name,
	}
}

// CreateRoom 處理建立聊天室的請求 (POST /api/rooms)
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		sendJSONError(w, "Room name is required", http.StatusBadRequest)
		return
	}

	room, err := h.Rooms.CreateRoom(r.Context(), req.Name)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, toRoomResponse(room))
}

// ListRooms 處理列出所有聊天室的請求 (GET /api/rooms)
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Rooms.ListRooms(r.Context())
	if err != nil {
		sendServiceError(w, err)
		return
	}

	// 沒有聊天室時回傳空陣列而不是 null
	response := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		response = append(response, toRoomResponse(room))
	}
	sendJSON(w, http.StatusOK, response)
}
