package db

import (
	"context"
	"time"

	"partyroom/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// открывает пул соединений и проверяет его; без базы сервис
// не имеет смысла, поэтому падаем сразу
func Connect(databaseURL string) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		logger.Fatal("не удалось создать пул соединений", "error", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("база данных недоступна", "error", err)
	}

	logger.Info("подключение к базе установлено")
	return pool
}
