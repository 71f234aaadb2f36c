package main

import (
	"fmt"
	"github.com/joho/godotenv"
	"gitlab.com/open-soft/go-crypto-dashboard/src/config"
	"log"
	"os"
)

func main() {
	pwd, _ := os.Getwd()
	if _, err := os.Stat(fmt.Sprintf("%s/.env", pwd)); err == nil {
		log.Println(".env is found, loading variables...")
		err = godotenv.Load()
		if err != nil {
			log.Println(err)
		}
	}

	dashboardConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	container, err := config.InitServiceContainer(dashboardConfig, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Dashboard session [%s] is started", container.Session.Uuid)

	err = container.DashboardController.Run()
	container.Close()

	if err != nil {
		log.Fatalf("[%s] %s", container.Session.Uuid, err.Error())
	}
}
