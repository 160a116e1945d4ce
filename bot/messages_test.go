package bot

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vert5x-git/tgInlineCalc/expr"
	"github.com/vert5x-git/tgInlineCalc/stats"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{expr.ErrRatesUnavailable, "Ошибка: не удалось загрузить курсы."},
		{expr.ErrInvalidCharacters, "Ошибка: недопустимые символы"},
		{expr.ErrSyntax, "Ошибка в синтаксисе"},
		{fmt.Errorf("%w: unexpected '+'", expr.ErrSyntax), "Ошибка в синтаксисе"},
		{expr.ErrDivisionByZero, "Ошибка: деление на ноль"},
		{expr.ErrInvalidOperation, "Ошибка в вычислениях"},
		{errors.New("boom"), "Неизвестная ошибка"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, userMessage(tt.err))
	}
}

func TestKnownError(t *testing.T) {
	assert.True(t, knownError(expr.ErrDivisionByZero))
	assert.True(t, knownError(fmt.Errorf("wrapped: %w", expr.ErrSyntax)))
	assert.False(t, knownError(errors.New("boom")))
}

func TestStatsText(t *testing.T) {
	text := statsText(stats.Summary{DAU: 1, MAU: 2, Today: 3, Total: 4})

	assert.Contains(t, text, "(DAU):</b> 1")
	assert.Contains(t, text, "(MAU):</b> 2")
	assert.Contains(t, text, "сегодня:</b> 3")
	assert.Contains(t, text, "Всего запросов:</b> 4")
}

func TestHelpMentionsBotName(t *testing.T) {
	assert.Contains(t, helpRU("calcbot"), "@calcbot")
	assert.Contains(t, helpEN("calcbot"), "@calcbot")
	assert.Contains(t, fallbackText("calcbot"), "@calcbot")
}
