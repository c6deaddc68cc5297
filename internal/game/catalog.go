package game

import "partyroom/internal/domain"

// Статический контент режимов: темы со словесными парами, спектры,
// пары вопросов, категории для бомбы, слова для рисования.
// Таблицы только читаются; движок никогда их не изменяет.

// Пара слов одной темы. Word получает большинство, Alt - меньшинство
// в режиме classic-imposter. Подсказки разной точности получает
// самозванец в режиме undercover-word.
type WordPair struct {
	Word       string
	Alt        string
	HintLow    string
	HintMedium string
}

type Theme struct {
	Name  string
	Pairs []WordPair
}

var Themes = []Theme{
	{
		Name: "еда",
		Pairs: []WordPair{
			{Word: "пицца", Alt: "паста", HintLow: "итальянская кухня", HintMedium: "круглая, с начинкой сверху"},
			{Word: "суши", Alt: "роллы", HintLow: "японская кухня", HintMedium: "рис и рыба"},
			{Word: "борщ", Alt: "щи", HintLow: "суп", HintMedium: "красный суп со свёклой"},
			{Word: "шашлык", Alt: "стейк", HintLow: "мясо на огне", HintMedium: "мясо на шампурах"},
			{Word: "мороженое", Alt: "торт", HintLow: "десерт", HintMedium: "холодный десерт"},
		},
	},
	{
		Name: "места",
		Pairs: []WordPair{
			{Word: "пляж", Alt: "бассейн", HintLow: "вода и отдых", HintMedium: "песок и море"},
			{Word: "кинотеатр", Alt: "театр", HintLow: "зрительный зал", HintMedium: "большой экран и попкорн"},
			{Word: "аэропорт", Alt: "вокзал", HintLow: "место отправления", HintMedium: "самолёты и чемоданы"},
			{Word: "библиотека", Alt: "книжный магазин", HintLow: "много книг", HintMedium: "тихое место с книгами"},
			{Word: "зоопарк", Alt: "цирк", HintLow: "животные", HintMedium: "животные в вольерах"},
		},
	},
	{
		Name: "профессии",
		Pairs: []WordPair{
			{Word: "врач", Alt: "медсестра", HintLow: "медицина", HintMedium: "белый халат и пациенты"},
			{Word: "пожарный", Alt: "спасатель", HintLow: "опасная работа", HintMedium: "тушит огонь"},
			{Word: "учитель", Alt: "репетитор", HintLow: "образование", HintMedium: "доска и ученики"},
			{Word: "повар", Alt: "кондитер", HintLow: "кухня", HintMedium: "готовит еду"},
			{Word: "космонавт", Alt: "пилот", HintLow: "высоко летает", HintMedium: "скафандр и невесомость"},
		},
	},
	{
		Name: "предметы",
		Pairs: []WordPair{
			{Word: "зонт", Alt: "плащ", HintLow: "от дождя", HintMedium: "раскрывается над головой"},
			{Word: "телефон", Alt: "планшет", HintLow: "гаджет", HintMedium: "всегда в кармане"},
			{Word: "гитара", Alt: "скрипка", HintLow: "музыкальный инструмент", HintMedium: "струны и гриф"},
			{Word: "подушка", Alt: "одеяло", HintLow: "для сна", HintMedium: "мягкая, под головой"},
			{Word: "велосипед", Alt: "самокат", HintLow: "транспорт без мотора", HintMedium: "две педали и руль"},
		},
	},
}

// Спектры wavelength: подписанные пары полюсов.
var Spectrums = []domain.Spectrum{
	{Left: "холодное", Right: "горячее"},
	{Left: "недооценено", Right: "переоценено"},
	{Left: "скучно", Right: "весело"},
	{Left: "дёшево", Right: "дорого"},
	{Left: "страшно", Right: "мило"},
	{Left: "бесполезно", Right: "необходимо"},
	{Left: "тихо", Right: "громко"},
	{Left: "старомодно", Right: "современно"},
}

// Пара вопросов mind-sync: основной и вопрос-обманка одной категории.
type QuestionPair struct {
	Category string
	Main     string
	Outlier  string
}

var QuestionPairs = []QuestionPair{
	{Category: "еда", Main: "Какая твоя любимая еда?", Outlier: "Какую еду ты ел последней?"},
	{Category: "путешествия", Main: "Куда бы ты поехал в отпуск?", Outlier: "Куда бы ты переехал жить?"},
	{Category: "кино", Main: "Какой фильм ты пересматривал больше всего?", Outlier: "Какой фильм ты советуешь всем?"},
	{Category: "детство", Main: "Кем ты хотел стать в детстве?", Outlier: "Кем работают твои родители?"},
	{Category: "страхи", Main: "Чего ты боишься больше всего?", Outlier: "Что тебя раздражает больше всего?"},
	{Category: "суперспособности", Main: "Какую суперспособность ты бы выбрал?", Outlier: "Какой навык ты хотел бы освоить?"},
}

// Категории для time-bomb.
var BombCategories = []string{
	"города",
	"животные",
	"фильмы",
	"еда",
	"имена",
	"бренды",
	"профессии",
	"виды спорта",
}

// буквы без редких: на них всегда есть слова
var BombLetters = []string{
	"А", "Б", "В", "Г", "Д", "К", "Л", "М", "Н", "О", "П", "Р", "С", "Т",
}

// Слова для pictionary.
var DrawWords = []string{
	"кошка", "ракета", "радуга", "пингвин", "гитара",
	"маяк", "динозавр", "воздушный шар", "снеговик", "осьминог",
	"вулкан", "русалка", "робот", "арбуз", "парашют",
}
