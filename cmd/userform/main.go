package main

import (
	"context"
	"log"
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"user-form/internal"
)

var (
	envFile  = kingpin.Flag("env-file", "Env file loaded before reading the environment").Default(".env").String()
	endpoint = kingpin.Flag("endpoint", "User endpoint URL, overrides USER_API_URL").Envar("USERFORM_ENDPOINT").String()
	port     = kingpin.Flag("port", "Listen port, overrides SERVICE_PORT").String()
)

func main() {
	kingpin.Parse()

	app, err := internal.NewApp(internal.Options{
		EnvFile:  *envFile,
		Endpoint: *endpoint,
		Port:     *port,
	})
	if err != nil {
		log.Fatalf("init app failed: %v", err)
	}
	defer app.Close()

	app.InitControllers()

	if err = app.Run(context.Background()); err != nil {
		app.Logger().Sugar().Errorf("userform stopped with error: %v", err)
		os.Exit(1)
	}
}
