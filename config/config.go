package config

import (
	"BistroBoss/store/sqlstore"
	"context"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

type ServerConfig struct {
	Port            string        `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Database string `yaml:"database"`
}

type DatabaseConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
	LogLevel string `yaml:"logLevel"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
}

type TokenConfig struct {
	Secret    string        `yaml:"secret"`
	ExpiresIn time.Duration `yaml:"expiresIn"`
}

type PaymentConfig struct {
	SecretKey string `yaml:"secretKey"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Token    TokenConfig    `yaml:"token"`
	Payment  PaymentConfig  `yaml:"payment"`
	Log      LogConfig      `yaml:"log"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            "5000",
			ShutdownTimeout: 15 * time.Second,
		},
		Storage: StorageConfig{Driver: DriverMongo},
		Mongo: MongoConfig{
			Host:     "cluster0.yq2vgbi.mongodb.net",
			Database: "bistroDB",
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     "3306",
			Database: "bistroDB",
			LogLevel: "warn",
		},
		Token: TokenConfig{ExpiresIn: time.Hour},
		Log:   LogConfig{Level: "info"},
	}
}

// 讀取設定檔，檔案不存在時使用預設值
func LoadConfig(filename string) (Config, error) {
	config := Default()
	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("decode %s: %w", filename, err)
	}

	return config, nil
}

// 讀取設定檔與.env，環境變數優先
func Load(filename string) (Config, error) {
	_ = godotenv.Load()

	config, err := LoadConfig(filename)
	if err != nil {
		return config, err
	}
	config.applyEnv(os.LookupEnv)

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	set("PORT", &c.Server.Port)
	set("STORAGE_DRIVER", &c.Storage.Driver)
	set("MONGODB_URI", &c.Mongo.URI)
	set("DB_USER", &c.Mongo.Username)
	set("DB_PASS", &c.Mongo.Password)
	set("DB_HOST", &c.Mongo.Host)
	set("DB_NAME", &c.Mongo.Database)
	set("MYSQL_USER", &c.Database.Username)
	set("MYSQL_PASSWORD", &c.Database.Password)
	set("MYSQL_HOST", &c.Database.Host)
	set("MYSQL_PORT", &c.Database.Port)
	set("MYSQL_DATABASE", &c.Database.Database)
	set("REDIS_ADDR", &c.Redis.Addr)
	set("REDIS_PASSWORD", &c.Redis.Password)
	set("ACCESS_TOKEN_SECRET", &c.Token.Secret)
	set("PAYMENT_SECRET", &c.Payment.SecretKey)
	set("LOG_LEVEL", &c.Log.Level)

	if v, ok := lookup("REDIS_DB"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Redis.Database = n
		}
	}
}

func (c Config) Validate() error {
	if c.Token.Secret == "" {
		return errors.New("config: token secret is required (ACCESS_TOKEN_SECRET)")
	}
	if c.Token.ExpiresIn <= 0 {
		return errors.New("config: token expiresIn must be positive")
	}
	switch c.Storage.Driver {
	case DriverMongo, DriverMySQL, DriverMemory:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

// 組合MongoDB連線字串，設定uri時直接使用
func (m MongoConfig) ConnectionURI() string {
	if m.URI != "" {
		return m.URI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(m.Username),
		url.QueryEscape(m.Password),
		m.Host,
	)
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

func SetupMongoConnection(ctx context.Context, config MongoConfig) (*mongo.Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(config.ConnectionURI()).
		SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, err
	}

	//確認連線成功
	err = client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return client.Database(config.Database), nil
}

func SetupMySQLConnection(config DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(config.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(config.LogLevel)),
	})
	if err != nil {
		return nil, err
	}

	err = sqlstore.AutoMigrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// 未設定addr時回傳nil，不啟用Token撤銷
func SetupRedisConnection(ctx context.Context, config RedisConfig) (*redis.Client, error) {
	if config.Addr == "" {
		return nil, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.Database,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, err
	}

	return redisClient, nil
}
