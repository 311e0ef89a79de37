package main

import "shacman-mx/cotizador/internal/app"

func main() {
	app.Run()
}
