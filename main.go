package main

import (
	"context"
	"net/http"

	"github.com/rs/cors"

	"github.com/Ansh1vohra/edublog-server/api/router"
	"github.com/Ansh1vohra/edublog-server/config"
	"github.com/Ansh1vohra/edublog-server/db"
	"github.com/Ansh1vohra/edublog-server/logger"
	"github.com/Ansh1vohra/edublog-server/mailer"
	"github.com/Ansh1vohra/edublog-server/media"
)

// @title           EduBlog API
// @version         1.0
// @description     Backend for the EduBlog platform: blogs, comments, study materials and user profiles
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		return
	}

	uploader, err := media.NewUploader(ctx, cfg.Minio)
	if err != nil {
		logger.Log.Errorf("failed to initialize media storage: %v", err)
		return
	}

	mail, err := mailer.New(cfg.Mail)
	if err != nil {
		logger.Log.Errorf("failed to initialize mailer: %v", err)
		return
	}

	r := router.New(uploader, mail)

	addr := cfg.ServerAddr
	if addr == "" {
		addr = ":8080"
	}
	logger.Log.Infof("listening on %s", addr)

	handler := cors.AllowAll().Handler(r)
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
	}
}
