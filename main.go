package main

import "live-chat-app/config"

func main() {
	config.RunServer()
}
