package mihomo_test

import (
	"testing"

	"github.com/leighmacdonald/srinfo/internal/mihomo"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLanguageCodes(t *testing.T) {
	expected := map[mihomo.Language]string{
		mihomo.TraditionalChinese: "cht",
		mihomo.SimplifiedChinese:  "cn",
		mihomo.German:             "de",
		mihomo.English:            "en",
		mihomo.Spanish:            "es",
		mihomo.French:             "fr",
		mihomo.Indonesian:         "id",
		mihomo.Japanese:           "jp",
		mihomo.Korean:             "kr",
		mihomo.Portuguese:         "pt",
		mihomo.Russian:            "ru",
		mihomo.Thai:               "th",
		mihomo.Vietnamese:         "vi",
	}

	languages := mihomo.Languages()
	require.Len(t, languages, len(expected))

	for _, lang := range languages {
		require.True(t, lang.Valid())
		require.Equal(t, expected[lang], lang.Code())
		require.NotEqual(t, language.Und, lang.Tag())

		parsed, err := mihomo.ParseLanguage(lang.Code())
		require.NoError(t, err)
		require.Equal(t, lang, parsed)
	}
}

func TestLanguageInvalid(t *testing.T) {
	for _, lang := range []mihomo.Language{0, -1, mihomo.Vietnamese + 1} {
		require.False(t, lang.Valid())
		require.Empty(t, lang.Code())
		require.Equal(t, "invalid", lang.String())
		require.Equal(t, language.Und, lang.Tag())

		_, err := lang.MarshalText()
		require.ErrorIs(t, err, mihomo.ErrInvalidLanguage)
	}
}

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  mihomo.Language
	}{
		{"EN", mihomo.English},
		{" jp ", mihomo.Japanese},
		{"kr", mihomo.Korean},
		{"cht", mihomo.TraditionalChinese},
		{"zh-TW", mihomo.TraditionalChinese},
		{"zh-Hant", mihomo.TraditionalChinese},
		{"zh-CN", mihomo.SimplifiedChinese},
		{"en-US", mihomo.English},
		{"pt-BR", mihomo.Portuguese},
		{"ja", mihomo.Japanese},
		{"ko-KR", mihomo.Korean},
	}

	for _, testCase := range cases {
		lang, err := mihomo.ParseLanguage(testCase.input)
		require.NoError(t, err, testCase.input)
		require.Equal(t, testCase.want, lang, testCase.input)
	}

	for _, input := range []string{"", "xx", "not a tag", "klingon"} {
		_, err := mihomo.ParseLanguage(input)
		require.ErrorIs(t, err, mihomo.ErrInvalidLanguage, input)
	}
}

func TestLanguageText(t *testing.T) {
	text, err := mihomo.Korean.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "kr", string(text))

	var lang mihomo.Language
	require.NoError(t, lang.UnmarshalText([]byte("zh-TW")))
	require.Equal(t, mihomo.TraditionalChinese, lang)
	require.ErrorIs(t, lang.UnmarshalText([]byte("xx")), mihomo.ErrInvalidLanguage)
	require.Equal(t, mihomo.TraditionalChinese, lang, "failed unmarshal leaves value untouched")
}
