// Package testutil 提供测试用的内存数据库、内存 redis 和造数工具。
package testutil

import (
	"Recycle/config"
	"Recycle/models"
	"Recycle/pkg/database"
	"Recycle/pkg/encrypt"
	"Recycle/pkg/snowflake"
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// NewDB 每次返回一个独立的 sqlite 内存库，已完成迁移
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	conf := &config.Database{
		Driver: config.DriverSQLite,
		Path:   fmt.Sprintf("file:recycle_test_%d?mode=memory&cache=shared", dbSeq.Add(1)),
	}
	db, err := database.Open(conf, false)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewRedis 启动一个 miniredis 并返回连上它的客户端
func NewRedis(t testing.TB) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

// SeedUser 直接写入一个用户，密码为 password123
func SeedUser(t testing.TB, db *gorm.DB, name string, points int64) *models.User {
	t.Helper()
	id := snowflake.GenID()
	hash, err := encrypt.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &models.User{
		ID:        id,
		Name:      name,
		Email:     fmt.Sprintf("%s-%d@example.com", name, id),
		Password:  hash,
		BarcodeID: fmt.Sprintf("BC%d", id),
		Points:    points,
	}
	if err := db.WithContext(context.Background()).Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// TestConfig 测试用的最小配置
func TestConfig() *config.Config {
	conf, _ := config.Parse([]byte(`
app:
  env: test
jwt:
  secret: test-secret
  expires_in: 3600
qrcode:
  hash_salt: test-salt
database:
  driver: sqlite
`))
	return conf
}
