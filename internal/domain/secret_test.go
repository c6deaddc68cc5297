package domain

import (
	"errors"
	"testing"
)

func TestParseWavelengthSecret(t *testing.T) {
	target := 42
	raw := MarshalSecret(WavelengthSecret{
		Spectrum: Spectrum{Left: "Холодное", Right: "Горячее"},
		Target:   &target,
	})

	sec, err := ParseWavelengthSecret(raw)
	if err != nil {
		t.Fatal(err)
	}
	if sec.Spectrum.Left != "Холодное" || sec.Target == nil || *sec.Target != 42 {
		t.Errorf("секрет разобрался неверно: %+v", sec)
	}
	if sec.Guess != nil {
		t.Errorf("догадка до ответа должна быть nil")
	}
}

// битый payload не роняет игру - возвращается ErrMalformedPayload
func TestParseSecret_Malformed(t *testing.T) {
	if _, err := ParseWavelengthSecret("{сломанный json"); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("ожидалась ErrMalformedPayload, получено %v", err)
	}
	if _, err := ParseMindSyncSecret(""); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("пустой секрет - ErrMalformedPayload, получено %v", err)
	}
	// WAITING - это «ещё не выбрано», а не фильм
	if _, err := ParseDirectorSecret(SecretWaiting); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("WAITING не разбирается как фильм, получено %v", err)
	}
}

func TestParseDirectorSecret(t *testing.T) {
	raw := MarshalSecret(DirectorSecret{Title: "Криминальное чтиво", Genre: "криминал", Year: 1994, Timer: 60})
	sec, err := ParseDirectorSecret(raw)
	if err != nil {
		t.Fatal(err)
	}
	if sec.Title != "Криминальное чтиво" || sec.Year != 1994 {
		t.Errorf("секрет режиссёра разобрался неверно: %+v", sec)
	}
}

func TestRoom_GameDataMap(t *testing.T) {
	room := &Room{Code: "ABCD", GameData: []byte(`{"round": 2, "drawerId": "x"}`)}
	data, err := room.GameDataMap()
	if err != nil {
		t.Fatal(err)
	}
	if data["drawerId"] != "x" {
		t.Errorf("game_data разобрался неверно: %v", data)
	}

	empty := &Room{Code: "ABCD"}
	data, err = empty.GameDataMap()
	if err != nil || len(data) != 0 {
		t.Errorf("пустой game_data - пустая карта: %v, %v", data, err)
	}

	broken := &Room{Code: "ABCD", GameData: []byte(`{broken`)}
	if _, err := broken.GameDataMap(); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("битый game_data - ErrMalformedPayload, получено %v", err)
	}
}

func TestSameName(t *testing.T) {
	if !SameName("  Алиса ", "алиса") {
		t.Errorf("имена сравниваются без регистра и пробелов")
	}
	if SameName("Алиса", "Боб") {
		t.Errorf("разные имена не совпадают")
	}
}
