package store

import (
	"github.com/skillswap/swap-backend/internal/store/swaprequest"
	"github.com/skillswap/swap-backend/internal/store/user"
)

type Store struct {
	SwapRequest swaprequest.IStore
	User        user.IStore
}

func New() *Store {
	return &Store{
		SwapRequest: swaprequest.New(),
		User:        user.New(),
	}
}
