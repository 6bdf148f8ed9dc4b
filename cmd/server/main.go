package main

import (
	"github.com/skillswap/swap-backend/internal/server"
)

func main() {
	server.Init()
}
