package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"devconnect/internal/config"
	"devconnect/internal/database"
	dbpostgres "devconnect/internal/database/postgres"
	"devconnect/internal/database/schema"
	persistence "devconnect/internal/infrastructure/persistence/postgres"
	"devconnect/internal/pkg/token"
	ucauth "devconnect/internal/usecase/auth"
	ucprofile "devconnect/internal/usecase/profile"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB

	Tokens    token.Service
	AuthUC    ucauth.Usecase
	ProfileUC ucprofile.Usecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := schema.Ensure(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	users := persistence.NewUserRepository(db)
	profiles := persistence.NewProfileRepository(db)

	tokens := token.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Tokens:    tokens,
		AuthUC:    ucauth.NewService(users, tokens, logger),
		ProfileUC: ucprofile.NewService(profiles, users, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
