package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"anon-chat/backend/database"
	"anon-chat/backend/models"
	"anon-chat/backend/services"

	"github.com/gorilla/mux"
)

// Handler 持有 API 層的所有依賴，由 main 在啟動時注入
type Handler struct {
	Rooms    *services.RoomService
	Messages *services.MessageService
	Store    database.Store // /test 診斷端點直接使用
}

// New 建立 Handler
func New(rooms *services.RoomService, messages *services.MessageService, store database.Store) *Handler {
	return &Handler{
		Rooms:    rooms,
		Messages: messages,
		Store:    store,
	}
}

// SetupRouter 註冊所有 API 路由
func (h *Handler) SetupRouter() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", h.Root).Methods("GET")
	router.HandleFunc("/test", h.TestDatabase).Methods("GET")

	router.HandleFunc("/api/rooms", h.CreateRoom).Methods("POST")
	router.HandleFunc("/api/rooms", h.ListRooms).Methods("GET")
	router.HandleFunc("/api/messages", h.SendMessage).Methods("POST")
	router.HandleFunc("/api/messages", h.GetMessages).Methods("GET")

	return router
}

// sendJSON 統一發送 JSON 格式回應
func sendJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

// sendJSONError 統一發送 JSON 格式錯誤響應
func sendJSONError(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(w, statusCode, models.ErrorResponse{Message: message})
}

// sendServiceError 將服務層錯誤轉換成對應的 HTTP 狀態碼
func sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidRoomID):
		sendJSONError(w, "Invalid room id", http.StatusBadRequest)
	case errors.Is(err, services.ErrRoomNotFound):
		sendJSONError(w, "Room not found", http.StatusNotFound)
	default:
		log.Printf("Internal error: %v", err)
		sendJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}
