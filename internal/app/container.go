package app

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/meron6/authsvc/domain"
	"github.com/meron6/authsvc/internal/config"
	"github.com/meron6/authsvc/internal/infrastructure/auth"
	"github.com/meron6/authsvc/internal/infrastructure/database"
	"github.com/meron6/authsvc/internal/infrastructure/notifications"
	"github.com/meron6/authsvc/internal/infrastructure/repositories"
	"github.com/meron6/authsvc/internal/logging"
	"github.com/meron6/authsvc/internal/services"
)

// Container holds all dependencies. The session store variant is chosen
// here, at construction time, and handed to the auth service; nothing
// downstream knows which backend is in play.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo     domain.UserRepository
	SessionStore domain.SessionStore

	PasswordSvc     domain.PasswordService
	NotificationSvc domain.NotificationService
	AuditLogger     domain.AuditLogger
	AuthSvc         domain.AuthService
}

// NewContainer creates and initializes all dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logging.New(logging.ParseLevel(cfg.LogLevel), cfg.RedactKeys),
	}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initSessionStore(); err != nil {
		return nil, err
	}
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	c.UserRepo = repositories.NewUserRepository(db)
	return nil
}

func (c *Container) initSessionStore() error {
	switch c.Config.SessionBackend {
	case config.SessionBackendMemory:
		c.SessionStore = repositories.NewMemorySessionStore(c.Config.SessionDuration)
	case config.SessionBackendDatabase:
		c.SessionStore = repositories.NewDBSessionStore(c.DB, c.Config.SessionDuration)
	case config.SessionBackendRedis:
		c.RedisClient = redis.NewClient(&redis.Options{
			Addr:     c.Config.RedisAddr,
			Password: c.Config.RedisPassword,
			DB:       c.Config.RedisDB,
		})
		c.SessionStore = repositories.NewRedisSessionStore(c.RedisClient, c.Config.SessionDuration)
	default:
		return fmt.Errorf("unknown session backend %q", c.Config.SessionBackend)
	}
	return nil
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService(c.Config.BcryptCost)
	if c.Config.SMTPAddr != "" {
		c.NotificationSvc = notifications.NewSMTPService(c.Config.SMTPAddr, c.Config.SMTPFrom, nil)
	}
	c.AuditLogger = logging.NewSlogAuditLogger(c.Logger)
	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.SessionStore,
		c.PasswordSvc,
		c.NotificationSvc,
		c.AuditLogger,
		c.Logger,
	)
}

// Close closes all connections.
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
