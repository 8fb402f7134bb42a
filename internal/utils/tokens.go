package utils

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// Модели Mistral нет в карте моделей tiktoken, поэтому используем
// универсальную кодировку cl100k_base. Для задачи "обрезать транскрипт
// под бюджет промпта" точное соответствие токенизатору модели не требуется.
const encodingName = "cl100k_base"

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
	encodingErr  error
)

func getEncoding() (*tiktoken.Tiktoken, error) {
	encodingOnce.Do(func() {
		encoding, encodingErr = tiktoken.GetEncoding(encodingName)
	})
	return encoding, encodingErr
}

// CountTokens возвращает количество токенов в тексте.
// При недоступности кодировщика возвращает грубую оценку по рунам.
func CountTokens(text string) int {
	tke, err := getEncoding()
	if err != nil {
		return len([]rune(text)) / 4
	}
	return len(tke.Encode(text, nil, nil))
}

// TruncateTokens обрезает текст до maxTokens токенов.
// Текст в пределах бюджета возвращается без изменений.
func TruncateTokens(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}

	tke, err := getEncoding()
	if err != nil {
		// Fallback: грубая обрезка по рунам (~4 символа на токен)
		runes := []rune(text)
		if len(runes) <= maxTokens*4 {
			return text
		}
		return string(runes[:maxTokens*4])
	}

	tokens := tke.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text
	}
	return tke.Decode(tokens[:maxTokens])
}

// TruncateRunes обрезает строку до maxRunes рун (для коротких полей промпта).
func TruncateRunes(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes])
}
