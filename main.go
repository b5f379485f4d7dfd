package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Mu6a9922/v3/app"
	"github.com/Mu6a9922/v3/routes"
)

func main() {
	_ = godotenv.Load()

	application := app.MustNew()
	defer application.Close()

	r := application.Router
	routes.RegisterRoutes(r, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
