package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"anon-chat/backend/models"
	"anon-chat/backend/services"
)

// SendMessageRequest 定義發送訊息的請求體
type SendMessageRequest struct {
	RoomID   string `json:"room_id"`
	Username string `json:"username"`
	Content  string `json:"content"`
}

// SendMessage 處理發送訊息的請求 (POST /api/messages)
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	id, err := h.Messages.SendMessage(r.Context(), req.RoomID, req.Username, req.Content)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

// GetMessages 處理查詢聊天記錄的請求 (GET /api/messages)
// 查詢參數：room_id（必填）、limit（選填，預設 50）
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room_id")
	if roomID == "" {
		sendJSONError(w, "room_id is required", http.StatusBadRequest)
		return
	}

	limit := int64(services.DefaultMessageLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			sendJSONError(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	messages, err := h.Messages.GetMessages(r.Context(), roomID, limit)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	// 沒有訊息時回傳空陣列而不是 null
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	sendJSON(w, http.StatusOK, messages)
}
