package service

import (
	"fmt"

	"recap-server/internal/utils"
)

// Лимиты полей внутри промпта ответа на вопрос.
// Summary и вопрос обрезаются, чтобы промпт оставался умеренного размера.
const (
	maxSummaryRunesInPrompt  = 2500
	maxQuestionRunesInPrompt = 500
)

const summarySystemPrompt = "Summarize this video transcript in 3 paragraphs. " +
	"Focus on the main topic and conclusion. " +
	"List out the main points as a bullet list and give significance to the main points. " +
	"STAY ONLY ACCORDING TO THE TRANSCRIPT GIVEN AND NOTHING ELSE."

const answerSystemPromptFormat = "Answer the question of the user based off the summary. " +
	"Use the summary as the context. " +
	"List out the main points as a bullet list. " +
	"The answer MUST STAY ONLY ACCORDING TO THE QUESTION GIVEN AND NOTHING ELSE. " +
	"If the user asks questions outside the context provided, respond by saying: " +
	"I cannot answer this question as it is out of context.\n\n" +
	"Summary: %s"

// BuildSummaryPrompt собирает system prompt и user input для суммаризации.
// Транскрипт обрезается до tokenLimit токенов.
func BuildSummaryPrompt(transcript string, tokenLimit int) (systemPrompt, userInput string) {
	return summarySystemPrompt, utils.TruncateTokens(transcript, tokenLimit)
}

// BuildAnswerPrompt собирает system prompt и user input для follow-up вопроса,
// ограничивая модель контекстом сохраненного summary.
func BuildAnswerPrompt(summary, question string) (systemPrompt, userInput string) {
	systemPrompt = fmt.Sprintf(answerSystemPromptFormat, utils.TruncateRunes(summary, maxSummaryRunesInPrompt))
	userInput = fmt.Sprintf("Question: %s", utils.TruncateRunes(question, maxQuestionRunesInPrompt))
	return systemPrompt, userInput
}
