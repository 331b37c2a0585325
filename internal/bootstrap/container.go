package bootstrap

import (
	"context"

	"github.com/masblog-io/masblog/internal/config"
	"github.com/masblog-io/masblog/internal/infra/blob"
	"github.com/masblog-io/masblog/internal/infra/cache"
	"github.com/masblog-io/masblog/internal/infra/db"
	"github.com/masblog-io/masblog/internal/infra/logger"
	"github.com/masblog-io/masblog/internal/infra/queue"
	"github.com/masblog-io/masblog/internal/modules/handler"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/repo"
	"github.com/masblog-io/masblog/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const eventsQueue = "masblog.events"

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.User{},
				&model.Profile{},
				&model.Category{},
				&model.Tag{},
				&model.Post{},
				&model.Comment{},
				&model.Asset{},
				&model.Contact{},
				&model.NewsletterSubscriber{},
			)
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// RabbitMQ connection and event publisher. Both are optional: with no
	// broker configured the services run without event delivery.
	do.Provide(inj, func(i *do.Injector) (*queue.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		conn, err := amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			return nil, err
		}
		return queue.NewPublisher(conn, eventsQueue, do.MustInvoke[*zap.Logger](i))
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (blob.ObjectStore, error) {
		cfg := do.MustInvoke[*config.Config](i)
		store, err := blob.NewS3(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProfileRepo, error) {
		return repo.NewProfileRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.PostRepo, error) {
		return repo.NewPostRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CategoryRepo, error) {
		return repo.NewCategoryRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TagRepo, error) {
		return repo.NewTagRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CommentRepo, error) {
		return repo.NewCommentRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AssetRepo, error) {
		return repo.NewAssetRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ContactRepo, error) {
		return repo.NewContactRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.NewsletterRepo, error) {
		return repo.NewNewsletterRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[repo.ProfileRepo](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProfileService, error) {
		return service.NewProfileService(do.MustInvoke[repo.ProfileRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PostService, error) {
		return service.NewPostService(
			do.MustInvoke[repo.PostRepo](i),
			do.MustInvoke[repo.TagRepo](i),
			do.MustInvoke[repo.ProfileRepo](i),
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CommentService, error) {
		return service.NewCommentService(
			do.MustInvoke[repo.CommentRepo](i),
			do.MustInvoke[repo.PostRepo](i),
			do.MustInvoke[repo.ProfileRepo](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AssetService, error) {
		return service.NewAssetService(
			do.MustInvoke[repo.AssetRepo](i),
			do.MustInvoke[blob.ObjectStore](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CategoryService, error) {
		return service.NewCategoryService(do.MustInvoke[repo.CategoryRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TagService, error) {
		return service.NewTagService(do.MustInvoke[repo.TagRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ContactService, error) {
		return service.NewContactService(
			do.MustInvoke[repo.ContactRepo](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.NewsletterService, error) {
		return service.NewNewsletterService(do.MustInvoke[repo.NewsletterRepo](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(
			do.MustInvoke[service.AuthService](i),
			do.MustInvoke[service.UserService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.UserService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProfileHandler, error) {
		return handler.NewProfileHandler(do.MustInvoke[service.ProfileService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PostHandler, error) {
		return handler.NewPostHandler(do.MustInvoke[service.PostService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CommentHandler, error) {
		return handler.NewCommentHandler(do.MustInvoke[service.CommentService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AssetHandler, error) {
		return handler.NewAssetHandler(do.MustInvoke[service.AssetService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CategoryHandler, error) {
		return handler.NewCategoryHandler(do.MustInvoke[service.CategoryService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TagHandler, error) {
		return handler.NewTagHandler(do.MustInvoke[service.TagService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ContactHandler, error) {
		return handler.NewContactHandler(do.MustInvoke[service.ContactService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.NewsletterHandler, error) {
		return handler.NewNewsletterHandler(do.MustInvoke[service.NewsletterService](i)), nil
	})

	return inj
}
