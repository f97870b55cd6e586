package i18n

// Translator retrieves localized wording for validator rule keywords.
// data provides optional metadata to embed in the message (unused by the
// built-in dictionaries, kept for custom Translators).
type Translator interface {
	Message(keyword string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(keyword string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch keyword {
		case "required":
			return "必須プロパティが不足しています"
		case "allOf":
			return "構成メンバーを満たしていません"
		case "type":
			return "型が不正です"
		case "pattern":
			return "パターンに一致しません"
		case "format":
			return "形式が不正です"
		case "enum":
			return "許可されていない値です"
		case "additionalProperties":
			return "未知のプロパティです"
		}
	default: // "en"
		switch keyword {
		case "required":
			return "missing required properties"
		case "allOf":
			return "does not satisfy every composition member"
		case "type":
			return "invalid type"
		case "pattern":
			return "pattern mismatch"
		case "format":
			return "invalid format"
		case "enum":
			return "value not allowed"
		case "additionalProperties":
			return "unexpected property"
		}
	}
	return keyword
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// T resolves a keyword through the current Translator.
func T(keyword string, data map[string]string) string {
	return currentTranslator.Message(keyword, data)
}
