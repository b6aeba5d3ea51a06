package database

import (
	"Recycle/config"
	"Recycle/models"
	"Recycle/pkg/log"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	db, err := Open(conf.Database, conf.Debug())
	if err != nil {
		log.L.Fatal("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db
}

func Open(conf *config.Database, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(conf.Dsn())
	case config.DriverSQLite:
		dialector = sqlite.Open(conf.Dsn())
	default:
		dialector = mysql.Open(conf.Dsn())
	}

	gormConf := &gorm.Config{TranslateError: true}
	if !debug {
		gormConf.Logger = logger.Default.LogMode(logger.Silent)
	}
	db, err := gorm.Open(dialector, gormConf)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if conf.Driver == config.DriverSQLite {
		// sqlite 只允许单写连接
		sqlDB.SetMaxOpenConns(1)
	} else {
		if conf.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
		}
		if conf.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
		}
	}
	return db, nil
}

// Migrate 同步表结构
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.WasteHistory{},
		&models.IssuedVoucher{},
	)
}
