package main

import "github.com/avdeyev/go-todo-api/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustConnectPostgres()
	defer app.DisconnectPostgres()

	stopSweeper := app.StartSweeper()
	defer stopSweeper()

	app.MustListenAndServeHTTP()
}
