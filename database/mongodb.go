package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// 既有資料庫的集合名稱
const (
	CollectionRooms    = "chatroom"
	CollectionMessages = "chatmessage"
)

var (
	// ErrNotFound 表示查詢條件沒有匹配到任何文件
	ErrNotFound = errors.New("document not found")

	// ErrUnavailable 表示底層儲存無法連線或請求逾時
	// 呼叫端不做重試，直接往上傳遞（對應 HTTP 500）
	ErrUnavailable = errors.New("storage unavailable")
)

// opTimeout 是單次資料庫操作的逾時上限
const opTimeout = 5 * time.Second

// Timestamped 讓 Insert 在文件的 created_at 尚未設定時補上預設時間戳
// 除了 _id 與此預設值之外，Insert 不會改動呼叫端提供的任何欄位
type Timestamped interface {
	DefaultCreatedAt(now time.Time)
}

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks anon-chat/backend/database Store

// Store 是文件儲存的抽象介面，對呼叫端隱藏底層儲存技術
// 所有操作都是網路 I/O，沒有任何行程內快取
type Store interface {
	// Insert 產生新的唯一識別碼並寫入文件，回傳該識別碼
	Insert(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error)

	// FindOne 回傳第一筆匹配的文件並解碼到 result；找不到時回傳 ErrNotFound
	// 有多筆匹配時不保證回傳哪一筆
	FindOne(ctx context.Context, collection string, filter bson.M, result interface{}) error

	// Find 回傳最多 limit 筆匹配的文件，依 sort 排序後解碼到 results
	Find(ctx context.Context, collection string, filter bson.M, sort bson.D, limit int64, results interface{}) error

	// ListAll 回傳集合內的所有文件，順序不在契約保證範圍內
	ListAll(ctx context.Context, collection string, results interface{}) error

	// ListCollectionNames 列出資料庫中的集合名稱，供診斷端點使用
	ListCollectionNames(ctx context.Context) ([]string, error)

	// Ping 驗證與儲存的連線是否存活
	Ping(ctx context.Context) error
}

// MongoStore 是 Store 的 MongoDB 實作
// 連線由整個行程共用，driver 本身保證並發安全，服務層不需要額外加鎖
type MongoStore struct {
	client *mongo.Client
	dbName string
}

// Connect 建立並初始化 MongoDB 連線，Ping 成功後才回傳
func Connect(uri, name string) (*MongoStore, error) {
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Ping the primary to verify connection
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	log.Println("Connected to MongoDB successfully!")
	return &MongoStore{client: client, dbName: name}, nil
}

// Disconnect 關閉 MongoDB 連線
func (s *MongoStore) Disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	} else {
		log.Println("Disconnected from MongoDB.")
	}
}

// DatabaseName 回傳連線使用的資料庫名稱
func (s *MongoStore) DatabaseName() string {
	return s.dbName
}

// collection 獲取指定名稱的集合
func (s *MongoStore) collection(name string) *mongo.Collection {
	return s.client.Database(s.dbName).Collection(name)
}

// Insert 寫入一筆文件並回傳儲存端配發的 ObjectID
func (s *MongoStore) Insert(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// created_at 若未設定則在此統一補上，寫入時間戳的地方只有這裡
	if t, ok := doc.(Timestamped); ok {
		t.DefaultCreatedAt(time.Now())
	}

	result, err := s.collection(collection).InsertOne(ctx, doc)
	if err != nil {
		log.Printf("Error inserting into %s: %v", collection, err)
		return primitive.NilObjectID, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%w: unexpected inserted id type %T", ErrUnavailable, result.InsertedID)
	}
	return id, nil
}

// FindOne 查詢單筆文件
func (s *MongoStore) FindOne(ctx context.Context, collection string, filter bson.M, result interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	err := s.collection(collection).FindOne(ctx, filter).Decode(result)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		log.Printf("Error finding document in %s: %v", collection, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Find 依條件查詢多筆文件，排序與筆數上限由呼叫端指定
func (s *MongoStore) Find(ctx context.Context, collection string, filter bson.M, sort bson.D, limit int64, results interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	findOptions := options.Find().SetSort(sort).SetLimit(limit)
	cursor, err := s.collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		log.Printf("Error finding documents in %s: %v", collection, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, results); err != nil {
		log.Printf("Error decoding documents from %s: %v", collection, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// ListAll 讀取集合內全部文件
func (s *MongoStore) ListAll(ctx context.Context, collection string, results interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := s.collection(collection).Find(ctx, bson.M{})
	if err != nil {
		log.Printf("Error listing documents in %s: %v", collection, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, results); err != nil {
		log.Printf("Error decoding documents from %s: %v", collection, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// ListCollectionNames 列出資料庫中的集合名稱
func (s *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	names, err := s.client.Database(s.dbName).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return names, nil
}

// Ping 驗證連線狀態
func (s *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
