package main

import (
	"os"

	"github.com/joel3500/Forum-de-Discussion-ENT/news"
	"github.com/joel3500/Forum-de-Discussion-ENT/server"
	"github.com/joel3500/Forum-de-Discussion-ENT/utils"
	"github.com/joel3500/Forum-de-Discussion-ENT/utils/dotenv"
	. "github.com/joel3500/Forum-de-Discussion-ENT/utils/log"
	"github.com/joel3500/Forum-de-Discussion-ENT/utils/token"
)

func main() {
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}
	InitLogger()

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to database: ", err)
	}
	if err := utils.DatabaseSetupAndMigration(db); err != nil {
		Log.Fatal("fail to migrate database: ", err)
	}
	if err := server.SeedAdmin(db); err != nil {
		Log.Fatal("fail to seed admin account: ", err)
	}

	manager, err := news.NewManager(db, news.NewFetcherFromEnv())
	if err != nil {
		Log.Fatal("fail to build news manager: ", err)
	}

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "dev_secret_key"
	}
	imgDir := os.Getenv("IMG_DIR")
	if imgDir == "" {
		imgDir = "static/img"
	}

	srv := server.New(db, manager, token.NewSigner(secret), imgDir)
	router := srv.Router(secret)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	Log.Info("forum server starts up on :", port)
	if err := router.Run(":" + port); err != nil {
		Log.Fatal("server stopped: ", err)
	}
}
