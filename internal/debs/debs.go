package deps

import (
	"log"

	"github.com/kekechi03/ero/config"
	"github.com/kekechi03/ero/internal/db"
	"github.com/kekechi03/ero/util/storage"
	"github.com/kekechi03/ero/util/websockets"
)

type Dependencies struct {
	DB         *db.DB
	Cloudinary *storage.Cloudinary
	Feed       *websockets.FeedManager
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	cloudinary := storage.NewCloudinary(cfg)
	feed := websockets.NewFeedManager()

	deps := Dependencies{
		DB:         database,
		Cloudinary: cloudinary,
		Feed:       feed,
	}
	return &deps
}

func (d *Dependencies) Pool() db.Pool {
	return d.DB.Pool()
}
