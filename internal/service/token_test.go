package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestRoomToken_RoundTrip(t *testing.T) {
	InitJWT()

	playerID := uuid.NewString()
	raw, err := IssueRoomToken(playerID, "ABCD")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseRoomToken(raw)
	if err != nil {
		t.Fatal(err)
	}
	if claims.PlayerID != playerID || claims.RoomCode != "ABCD" {
		t.Errorf("привязка потерялась: %+v", claims)
	}
}

func TestParseRoomToken_Garbage(t *testing.T) {
	InitJWT()

	if _, err := ParseRoomToken("не.токен.вовсе"); err == nil {
		t.Errorf("мусор не должен проходить проверку подписи")
	}
	if _, err := ParseRoomToken(""); err == nil {
		t.Errorf("пустой токен не должен проходить")
	}
}
