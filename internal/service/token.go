package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Сессионный токен комнаты. Это не учётная запись - игрок живёт не
// дольше своей комнаты, токен лишь привязывает соединение и мутации
// к паре (игрок, комната).

var jwtSecret []byte

// читает секрет из окружения; вызывается один раз на старте
func InitJWT() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	jwtSecret = []byte(secret)
}

type RoomClaims struct {
	PlayerID string `json:"player_id"`
	RoomCode string `json:"room_code"`
	jwt.RegisteredClaims
}

// выпускает токен при создании/входе в комнату; срок жизни с запасом
// покрывает одну игровую сессию
func IssueRoomToken(playerID, roomCode string) (string, error) {
	claims := RoomClaims{
		PlayerID: playerID,
		RoomCode: roomCode,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// проверяет подпись и возвращает привязку игрока к комнате
func ParseRoomToken(raw string) (*RoomClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &RoomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("неожиданный метод подписи")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*RoomClaims)
	if !ok || !token.Valid || claims.PlayerID == "" {
		return nil, errors.New("невалидный токен")
	}
	return claims, nil
}
