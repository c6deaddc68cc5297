package domain

import "errors"

// Ошибки уровня сессии. Сообщения показываются игроку как есть,
// поэтому они на языке интерфейса.
var (
	ErrNotFound            = errors.New("комната не найдена")
	ErrAlreadyStarted      = errors.New("игра уже началась")
	ErrNameTaken           = errors.New("имя уже занято")
	ErrEmptyName           = errors.New("имя не может быть пустым")
	ErrInsufficientPlayers = errors.New("недостаточно игроков")
	// ноль затронутых строк при удалении/обновлении: отличаем
	// «запись уже исчезла» от «заблокировано политикой доступа»
	ErrPermissionDenied = errors.New("операция запрещена")
	ErrMalformedPayload = errors.New("повреждённые данные игры")
	ErrStore            = errors.New("ошибка хранилища")
	ErrNotHost          = errors.New("только ведущий может это сделать")
	ErrBadPhase         = errors.New("недопустимый переход фазы")
	ErrUnknownMode      = errors.New("неизвестный режим игры")
)
