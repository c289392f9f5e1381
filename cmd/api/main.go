package main

import (
	"fmt"
	"log"
	"mbspricer/cmd"
	"mbspricer/internal"
	"os"
)

func main() {
	fmt.Println(os.Getenv("commit_hash"))
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	config, err := internal.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(config.Port)
	if err != nil {
		log.Fatal(err)
	}
}
