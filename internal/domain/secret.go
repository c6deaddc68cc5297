package domain

import "encoding/json"

// Секрет игрока хранится одной строкой, но форма зависит от режима:
// слово, подсказка, спектр с целью, вопрос, фильм. Здесь боковые
// варианты с разбором на границе. Битый payload никогда не роняет
// игру - вызывающий получает ErrMalformedPayload и подставляет
// видимую заглушку.

// заглушка, которую видит игрок вместо нечитаемого секрета
const SecretPlaceholder = "???"

// секрет ещё не выбран (режиссёр не выбрал фильм, художник - слово)
const SecretWaiting = "WAITING"

// Спектр для режима wavelength: подписанные полюса шкалы.
type Spectrum struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Секрет режима wavelength. Target раскрыт только экстрасенсу,
// у остальных null.
type WavelengthSecret struct {
	Spectrum Spectrum `json:"spectrum"`
	Target   *int     `json:"target"`
	Guess    *int     `json:"guess,omitempty"`
}

// Секрет режиссёра после выбора фильма.
type DirectorSecret struct {
	Title string `json:"title"`
	Genre string `json:"genre"`
	Year  int    `json:"year"`
	Timer int    `json:"timer"`
}

// Секрет mind-sync: вопрос игрока плюс его свободный ответ,
// дописываемый позже под ключом "answer".
type MindSyncSecret struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

// Общий секрет time-bomb: категория и буква, одинаковые для всех.
type TimeBombSecret struct {
	Category string `json:"category"`
	Letter   string `json:"letter"`
}

func ParseWavelengthSecret(raw string) (WavelengthSecret, error) {
	var s WavelengthSecret
	if raw == "" {
		return s, ErrMalformedPayload
	}
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return WavelengthSecret{}, ErrMalformedPayload
	}
	return s, nil
}

func ParseDirectorSecret(raw string) (DirectorSecret, error) {
	var s DirectorSecret
	if raw == "" || raw == SecretWaiting {
		return s, ErrMalformedPayload
	}
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return DirectorSecret{}, ErrMalformedPayload
	}
	return s, nil
}

func ParseMindSyncSecret(raw string) (MindSyncSecret, error) {
	var s MindSyncSecret
	if raw == "" {
		return s, ErrMalformedPayload
	}
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return MindSyncSecret{}, ErrMalformedPayload
	}
	return s, nil
}

func ParseTimeBombSecret(raw string) (TimeBombSecret, error) {
	var s TimeBombSecret
	if raw == "" {
		return s, ErrMalformedPayload
	}
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return TimeBombSecret{}, ErrMalformedPayload
	}
	return s, nil
}

// сериализует любой из вариантов обратно в строку колонки secret_word
func MarshalSecret(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return SecretPlaceholder
	}
	return string(b)
}
