package services

import "errors"

// 服務層的錯誤分類，由 handlers 轉換成對應的 HTTP 狀態碼
var (
	// ErrInvalidRoomID 表示客戶端提供的聊天室 ID 格式不正確（對應 400）
	ErrInvalidRoomID = errors.New("invalid room id")

	// ErrRoomNotFound 表示指定的聊天室不存在（對應 404）
	ErrRoomNotFound = errors.New("room not found")
)
