package mihomo

import (
	"strings"

	"golang.org/x/text/language"
)

// Language selects the localisation of the names and descriptions returned by the api.
// The zero value is not a valid language.
type Language int

const (
	TraditionalChinese Language = iota + 1
	SimplifiedChinese
	German
	English
	Spanish
	French
	Indonesian
	Japanese
	Korean
	Portuguese
	Russian
	Thai
	Vietnamese
)

// languageTags is indexed by Language-1 and doubles as the matcher's supported list.
var languageTags = []language.Tag{ //nolint:gochecknoglobals
	language.TraditionalChinese,
	language.SimplifiedChinese,
	language.German,
	language.English,
	language.Spanish,
	language.French,
	language.Indonesian,
	language.Japanese,
	language.Korean,
	language.Portuguese,
	language.Russian,
	language.Thai,
	language.Vietnamese,
}

var languageMatcher = language.NewMatcher(languageTags) //nolint:gochecknoglobals

// Languages returns every supported language in declaration order.
func Languages() []Language {
	languages := make([]Language, 0, len(languageTags))
	for index := range languageTags {
		languages = append(languages, Language(index+1))
	}

	return languages
}

// Code returns the value used for the lang query parameter, or an empty string for an invalid
// language.
func (l Language) Code() string {
	switch l {
	case TraditionalChinese:
		return "cht"
	case SimplifiedChinese:
		return "cn"
	case German:
		return "de"
	case English:
		return "en"
	case Spanish:
		return "es"
	case French:
		return "fr"
	case Indonesian:
		return "id"
	case Japanese:
		return "jp"
	case Korean:
		return "kr"
	case Portuguese:
		return "pt"
	case Russian:
		return "ru"
	case Thai:
		return "th"
	case Vietnamese:
		return "vi"
	default:
		return ""
	}
}

func (l Language) Valid() bool {
	return l.Code() != ""
}

func (l Language) String() string {
	if !l.Valid() {
		return "invalid"
	}

	return l.Code()
}

// Tag returns the BCP 47 tag of the language, language.Und when invalid.
func (l Language) Tag() language.Tag {
	if !l.Valid() {
		return language.Und
	}

	return languageTags[l-1]
}

// ParseLanguage accepts either an api code ("cht", "jp", ...) or a BCP 47 tag ("zh-TW",
// "pt-BR", ...). Tags are matched to the closest supported language.
func ParseLanguage(value string) (Language, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return 0, ErrInvalidLanguage
	}

	for _, lang := range Languages() {
		if lang.Code() == value {
			return lang, nil
		}
	}

	tag, errTag := language.Parse(value)
	if errTag != nil {
		return 0, &LanguageError{Value: value, Err: errTag}
	}

	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return 0, &LanguageError{Value: value}
	}

	return Language(index + 1), nil
}

func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &LanguageError{Value: l.String()}
	}

	return []byte(l.Code()), nil
}

func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}
