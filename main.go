package main

import "vecino-activo/config"

func main() {
	config.RunServer()
}
