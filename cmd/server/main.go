package main

//	@title			Masblog API
//	@version		1.0
//	@description	Blogging platform backend with asset lifecycle tracking and comment moderation.
//	@schemes		http https
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				User access token (e.g., "Bearer eyJhbGciOi...")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/masblog-io/masblog/internal/bootstrap"
	"github.com/masblog-io/masblog/internal/config"
	"github.com/masblog-io/masblog/internal/modules/handler"
	"github.com/masblog-io/masblog/internal/modules/service"
	"github.com/masblog-io/masblog/internal/router"
	"github.com/samber/do"
	"go.uber.org/zap"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:            cfg,
		Log:               log,
		AuthService:       do.MustInvoke[service.AuthService](inj),
		AuthHandler:       do.MustInvoke[*handler.AuthHandler](inj),
		UserHandler:       do.MustInvoke[*handler.UserHandler](inj),
		ProfileHandler:    do.MustInvoke[*handler.ProfileHandler](inj),
		PostHandler:       do.MustInvoke[*handler.PostHandler](inj),
		CommentHandler:    do.MustInvoke[*handler.CommentHandler](inj),
		AssetHandler:      do.MustInvoke[*handler.AssetHandler](inj),
		CategoryHandler:   do.MustInvoke[*handler.CategoryHandler](inj),
		TagHandler:        do.MustInvoke[*handler.TagHandler](inj),
		ContactHandler:    do.MustInvoke[*handler.ContactHandler](inj),
		NewsletterHandler: do.MustInvoke[*handler.NewsletterHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
