package postgres

import (
	"database/sql"

	"sharelah-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.StallRepository
	repository.TransactionRepository
	repository.PromoCodeRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		StallRepository:       NewStallRepository(db),
		TransactionRepository: NewTransactionRepository(db),
		PromoCodeRepository:   NewPromoCodeRepository(db),
	}
}
