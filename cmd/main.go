package main

import (
	"os"

	"github.com/MuKuL-DiXiT/Fit-Fusion/config"
	"github.com/MuKuL-DiXiT/Fit-Fusion/routes"
	"github.com/MuKuL-DiXiT/Fit-Fusion/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
