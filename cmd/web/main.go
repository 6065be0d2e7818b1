package main

import "talentsite_backend/internal/app"

func main() {
	app.Run()
}
