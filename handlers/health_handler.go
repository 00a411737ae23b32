package handlers

import (
	"net/http"
	"os"
)

// DiagnosticsResponse 是 /test 診斷端點的回應結構
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root 處理存活檢查 (GET /)
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{"message": "Anonymous Chat API is running"})
}

// truncateError 將錯誤訊息截斷到診斷回應可讀的長度
func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > 50 {
		msg = msg[:50]
	}
	return msg
}

// envStatus 回報環境變數是否有設定，診斷用，不洩漏實際值
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// TestDatabase 處理儲存連線診斷的請求 (GET /test)
// 回報連線狀態與最多 10 個集合名稱，錯誤以描述文字呈現方便維運排查
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	response := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      envStatus("DATABASE_URL"),
		DatabaseName:     envStatus("DATABASE_NAME"),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if err := h.Store.Ping(r.Context()); err != nil {
		response.Database = "❌ Error: " + truncateError(err)
		sendJSON(w, http.StatusOK, response)
		return
	}

	response.Database = "✅ Available"
	response.ConnectionStatus = "Connected"

	collections, err := h.Store.ListCollectionNames(r.Context())
	if err != nil {
		response.Database = "⚠️  Connected but Error: " + truncateError(err)
		sendJSON(w, http.StatusOK, response)
		return
	}

	if len(collections) > 10 {
		collections = collections[:10]
	}
	response.Collections = collections
	response.Database = "✅ Connected & Working"

	sendJSON(w, http.StatusOK, response)
}
