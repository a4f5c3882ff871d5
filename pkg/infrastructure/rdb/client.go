package rdb

import (
	"context"
	"fmt"
	"time"

	"mining-profit/pkg/domain/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	createTable = "create table if not exists transactions(id int primary key,coin varchar(32) not null,t timestamp not null,amount float not null)"
)

// index transactions のインデックス
type index struct {
	name   string
	column string
}

var indexes = []index{
	{name: "coin_idx", column: "coin"},
	{name: "t_idx", column: "t"},
}

// Client DB用クライアント
type Client struct {
	db      *gorm.DB
	dialect string
}

// Open 設定に従って接続
func Open(conf *model.DB) (*Client, error) {
	dialector, err := NewDialector(conf)
	if err != nil {
		return nil, err
	}
	return NewClient(dialector)
}

// NewDialector 設定からドライバを選ぶ
func NewDialector(conf *model.DB) (gorm.Dialector, error) {
	switch conf.Driver {
	case model.DriverSQLite, "":
		return sqlite.Open(conf.Path), nil
	case model.DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8&parseTime=True&loc=Local", conf.UserName, conf.Password, conf.Host, conf.Port, conf.Name)
		return mysql.Open(dsn), nil
	}
	return nil, fmt.Errorf("unknown db driver: %s", conf.Driver)
}

// NewClient 生成
func NewClient(dialector gorm.Dialector) (*Client, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return &Client{db: db, dialect: dialector.Name()}, nil
}

// Close 切断
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureSchema transactions テーブルとインデックスがなければ作成
func (c *Client) EnsureSchema(ctx context.Context) error {
	db := c.db.WithContext(ctx)
	if err := exec(db, createTable); err != nil {
		return err
	}

	for _, idx := range indexes {
		// MySQL の create index は if not exists を持たない
		if c.dialect == model.DriverMySQL {
			var count int64
			if err := db.Raw(
				"select count(*) from information_schema.statistics where table_schema = database() and table_name = ? and index_name = ?",
				"transactions", idx.name,
			).Scan(&count).Error; err != nil {
				return fmt.Errorf("failed to find index %s: %w", idx.name, err)
			}
			if count > 0 {
				continue
			}
			if err := exec(db, fmt.Sprintf("create index %s on transactions(%s)", idx.name, idx.column)); err != nil {
				return err
			}
			continue
		}
		if err := exec(db, fmt.Sprintf("create index if not exists %s on transactions(%s)", idx.name, idx.column)); err != nil {
			return err
		}
	}
	return nil
}

func exec(db *gorm.DB, stmt string) error {
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("failed to execute ddl, sql: %s, error: %w", stmt, err)
	}
	return nil
}

// GetTransactions コインの入出金履歴を古い順に取得
func (c *Client) GetTransactions(ctx context.Context, coin string, since *time.Duration) ([]model.Transaction, error) {
	q := c.db.WithContext(ctx).Where("coin = ?", coin)
	if since != nil {
		q = q.Where("t > ?", time.Now().Add(-*since))
	}

	records := []Transaction{}
	if err := q.Order("t").Find(&records).Error; err != nil {
		return nil, err
	}

	tt := []model.Transaction{}
	for _, r := range records {
		tt = append(tt, *r.ToDomainModel())
	}
	return tt, nil
}

// WithDB 接続してから fn を実行し、必ず切断する
func WithDB(conf *model.DB, fn func(*Client) error) (err error) {
	c, err := Open(conf)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(c)
}
