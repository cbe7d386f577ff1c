package main

import (
	"log"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/model"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/repo"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/config"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/db"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/helper"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/route"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/workers"
)

func main() {
	config.LoadEnv()
	config.Logger()

	db.ConnectDB()

	if err := db.GetDB().AutoMigrate(
		&model.User{},
		&model.Asset{},
		&model.ProcurementRequest{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	db.SeedUsers()

	app := config.NewApp()

	hub := helper.NewHub()
	go hub.Run()

	route.SetupRoutes(app, db.GetDB(), db.GetMongo(), db.GetRedis(), hub)

	reminder := workers.NewReminder(
		repo.NewProcurementRepo(db.GetDB()),
		repo.NewUserRepo(db.GetDB()),
		hub,
		config.Env.ReminderInterval,
		config.Env.ReminderMaxAge,
	)
	reminder.Start()

	log.Fatal(app.Listen(":" + config.Env.AppPort))
}
