package main

import (
	"github.com/marquee-live/backoffice/cmd/app"
)

func main() {
	app.Run()
}
