package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"partyroom/internal/domain"
)

func TestGenerateRoomCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := generateRoomCode()
		if len(code) != 4 {
			t.Fatalf("код всегда из 4 символов, получено %q", code)
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("код только из заглавных латинских букв, получено %q", code)
			}
		}
	}
}

func TestGenerateRoomCode_Varies(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[generateRoomCode()] = true
	}
	// 50 подряд одинаковых кодов - почти наверняка сломанный генератор
	if len(seen) < 2 {
		t.Fatalf("генератор выдаёт один и тот же код")
	}
}

// передать статус ведущего может только сам ведущий, и только игроку
// своей комнаты - иначе в комнате окажется два ведущих
func TestCanTransferHost(t *testing.T) {
	host := &domain.Player{ID: "a", RoomCode: "ABCD", IsHost: true}
	member := &domain.Player{ID: "b", RoomCode: "ABCD"}
	stranger := &domain.Player{ID: "c", RoomCode: "WXYZ"}

	if err := canTransferHost(host, member); err != nil {
		t.Errorf("ведущий передаёт статус игроку своей комнаты: %v", err)
	}
	if err := canTransferHost(member, host); !errors.Is(err, domain.ErrNotHost) {
		t.Errorf("не-ведущий не передаёт статус: ожидалась ErrNotHost, получено %v", err)
	}
	if err := canTransferHost(host, stranger); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Errorf("игрок чужой комнаты не приёмник: ожидалась ErrPermissionDenied, получено %v", err)
	}
}

// опечатка в режиме всплывает при создании комнаты, до записи в
// хранилище
func TestCreateRoom_UnknownMode(t *testing.T) {
	s := NewRoomService(nil, nil, nil, nil)

	_, _, _, err := s.CreateRoom(context.Background(), "Алиса", "rock-paper-scissors")
	if !errors.Is(err, domain.ErrUnknownMode) {
		t.Fatalf("ожидалась ErrUnknownMode, получено %v", err)
	}

	// пустое имя отсекается ещё раньше режима
	_, _, _, err = s.CreateRoom(context.Background(), "  ", "undercover-word")
	if !errors.Is(err, domain.ErrEmptyName) {
		t.Fatalf("ожидалась ErrEmptyName, получено %v", err)
	}
}
