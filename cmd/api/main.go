package main

import (
	appfx "NestEgg/internal/fx"

	"go.uber.org/fx"
)

//	@title			NestEgg API
//	@version		1.0
//	@description	Savings goals and expense tracking API.
//	@BasePath		/api

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
