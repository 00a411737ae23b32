package database_test

import (
	"context"
	"testing"
	"time"

	"anon-chat/backend/database"
	"anon-chat/backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// startMongo 啟動一個一次性的 MongoDB 容器並回傳連線好的 store
func startMongo(t *testing.T) *database.MongoStore {
	t.Helper()

	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err, "啟動 MongoDB 容器不應該失敗")
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	store, err := database.Connect(uri, "chat_app_test")
	require.NoError(t, err, "連線 MongoDB 不應該失敗")
	t.Cleanup(store.Disconnect)

	return store
}

func TestMongoStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping MongoDB integration test in short mode")
	}

	store := startMongo(t)
	ctx := context.Background()
	rooms := services.NewRoomService(store)
	messages := services.NewMessageService(store)

	t.Run("CreateRoomThenList", func(t *testing.T) {
		room, err := rooms.CreateRoom(ctx, "lobby")
		require.NoError(t, err)
		assert.False(t, room.ID.IsZero(), "建立聊天室應該配發 ID")
		assert.False(t, room.CreatedAt.IsZero(), "Insert 應該補上 created_at")

		listed, err := rooms.ListRooms(ctx)
		require.NoError(t, err)

		// 列表中應該恰好有一筆名稱與 ID 都相符的聊天室
		var matched int
		for _, r := range listed {
			if r.ID == room.ID && r.Name == "lobby" {
				matched++
			}
		}
		assert.Equal(t, 1, matched, "列表應該恰好包含剛建立的聊天室")
	})

	t.Run("SendMessageRoundTrip", func(t *testing.T) {
		room, err := rooms.CreateRoom(ctx, "roundtrip")
		require.NoError(t, err)

		id, err := messages.SendMessage(ctx, room.ID.Hex(), "alice", "hi")
		require.NoError(t, err)
		assert.False(t, id.IsZero())

		history, err := messages.GetMessages(ctx, room.ID.Hex(), 0)
		require.NoError(t, err)
		require.Len(t, history, 1)

		// 讀回的欄位應該與寫入時完全一致，外加配發的 id 與 created_at
		msg := history[0]
		assert.Equal(t, id, msg.ID)
		assert.Equal(t, room.ID, msg.RoomID)
		assert.Equal(t, "alice", msg.Username)
		assert.Equal(t, "hi", msg.Content)
		assert.False(t, msg.CreatedAt.IsZero())
	})

	t.Run("SendMessageRoomNotFound", func(t *testing.T) {
		// 格式合法但不存在的聊天室：不應該寫入任何訊息
		ghost := primitive.NewObjectID()
		_, err := messages.SendMessage(ctx, ghost.Hex(), "alice", "hi")
		assert.ErrorIs(t, err, services.ErrRoomNotFound)

		history, err := messages.GetMessages(ctx, ghost.Hex(), 0)
		require.NoError(t, err)
		assert.Empty(t, history, "查無聊天室時不應該留下任何寫入")
	})

	t.Run("MessageOrderingWindow", func(t *testing.T) {
		room, err := rooms.CreateRoom(ctx, "ordering")
		require.NoError(t, err)

		// 依序發送三則訊息，間隔確保時間戳嚴格遞增
		sends := []struct{ username, content string }{
			{"alice", "hi"},
			{"bob", "hey"},
			{"alice", "bye"},
		}
		for _, s := range sends {
			_, err := messages.SendMessage(ctx, room.ID.Hex(), s.username, s.content)
			require.NoError(t, err)
			time.Sleep(10 * time.Millisecond)
		}

		// 全量查詢應該是由舊到新
		all, err := messages.GetMessages(ctx, room.ID.Hex(), 3)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "hi", all[0].Content)
		assert.Equal(t, "hey", all[1].Content)
		assert.Equal(t, "bye", all[2].Content)
		assert.True(t, all[0].CreatedAt.Before(all[1].CreatedAt))
		assert.True(t, all[1].CreatedAt.Before(all[2].CreatedAt))

		// limit=2 應該是最近兩則，仍然由舊到新
		window, err := messages.GetMessages(ctx, room.ID.Hex(), 2)
		require.NoError(t, err)
		require.Len(t, window, 2)
		assert.Equal(t, "bob", window[0].Username)
		assert.Equal(t, "hey", window[0].Content)
		assert.Equal(t, "alice", window[1].Username)
		assert.Equal(t, "bye", window[1].Content)
	})

	t.Run("AdapterPrimitives", func(t *testing.T) {
		// FindOne 查無文件時回傳 ErrNotFound 而不是底層錯誤
		var out bson.M
		err := store.FindOne(ctx, database.CollectionRooms, bson.M{"_id": primitive.NewObjectID()}, &out)
		assert.ErrorIs(t, err, database.ErrNotFound)

		assert.NoError(t, store.Ping(ctx))

		names, err := store.ListCollectionNames(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, database.CollectionRooms)
		assert.Contains(t, names, database.CollectionMessages)
	})
}
