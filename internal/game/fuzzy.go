package game

import (
	"strings"
	"unicode"
)

// Нечёткое сравнение свободных ответов в pictionary и точное
// сравнение названий фильмов в directors-cut.

type GuessVerdict int

const (
	GuessWrong GuessVerdict = iota
	// близко, но без очка - только сигнал для интерфейса
	GuessClose
	GuessCorrect
)

// приводит строку к нижнему регистру и выбрасывает всё,
// кроме букв и цифр
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// классическое редакционное расстояние, вставка/удаление/замена по 1
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // удаление
				curr[j-1]+1,    // вставка
				prev[j-1]+cost, // замена
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// допуск ошибок в зависимости от длины загаданного слова
func allowedErrors(targetLen int) int {
	switch {
	case targetLen >= 7:
		return 2
	case targetLen >= 4:
		return 1
	default:
		return 0
	}
}

// сравнивает догадку с загаданным словом. Сначала точное совпадение
// после нормализации, затем расстояние Левенштейна с допуском по
// длине. Разница длин больше 2 сразу «мимо» - в допуск уже не
// уложиться. Полоса «близко» односторонняя: ровно allowed+1, не меньше.
func MatchGuess(target, guess string) GuessVerdict {
	t := Normalize(target)
	g := Normalize(guess)

	if t == g {
		return GuessCorrect
	}

	tLen := len([]rune(t))
	gLen := len([]rune(g))
	diff := tLen - gLen
	if diff < 0 {
		diff = -diff
	}
	if diff > 2 {
		return GuessWrong
	}

	allowed := allowedErrors(tLen)
	dist := Levenshtein(t, g)

	if dist <= allowed {
		return GuessCorrect
	}
	if tLen >= 3 && dist <= allowed+1 {
		return GuessClose
	}
	return GuessWrong
}

// название фильма угадывается только целиком: та же нормализация,
// но без какой-либо нечёткости
func MatchMovie(title, guess string) bool {
	return Normalize(title) == Normalize(guess)
}
