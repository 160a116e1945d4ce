package bot

import (
	"errors"
	"fmt"

	"github.com/vert5x-git/tgInlineCalc/expr"
	"github.com/vert5x-git/tgInlineCalc/stats"
)

// knownError reports whether err belongs to the evaluation taxonomy.
// Unknown errors get logged with their raw text before being shown to
// the user as the generic message.
func knownError(err error) bool {
	return errors.Is(err, expr.ErrRatesUnavailable) ||
		errors.Is(err, expr.ErrSyntax) ||
		errors.Is(err, expr.ErrDivisionByZero) ||
		errors.Is(err, expr.ErrInvalidOperation)
}

// userMessage maps an evaluation error to its user-facing text. Anything
// outside the known taxonomy gets the generic message; the raw error is
// for the log only.
func userMessage(err error) string {
	switch {
	case errors.Is(err, expr.ErrRatesUnavailable):
		return "Ошибка: не удалось загрузить курсы."
	case errors.Is(err, expr.ErrInvalidCharacters):
		return "Ошибка: недопустимые символы"
	case errors.Is(err, expr.ErrSyntax):
		return "Ошибка в синтаксисе"
	case errors.Is(err, expr.ErrDivisionByZero):
		return "Ошибка: деление на ноль"
	case errors.Is(err, expr.ErrInvalidOperation):
		return "Ошибка в вычислениях"
	default:
		return "Неизвестная ошибка"
	}
}

func helpRU(botName string) string {
	return fmt.Sprintf(`
<b>🧮 Калькулятор в инлайн-режиме</b>

Начните печатать в любом чате имя бота (<code>@%[1]v</code>), а затем математическое выражение. Результат появится во всплывающем окне.

<b>Примеры:</b>
<code>@%[1]v (237+78)/(66623-1000)</code>
<code>@%[1]v ur+1.5%%</code>
<code>@%[1]v ob+4%%</code>

<b>⚖️ Сокращения:</b>
<code>ur</code> - ЦБ РФ USD/RUB
<code>cr</code> - ЦБ РФ CNY/RUB
<code>er</code> - ЦБ РФ EUR/RUB
<code>eu</code> - EUR/USD (кросс-курс)
<code>bnc</code> - Binance BTC/USDT
<code>eth</code> - Binance ETH/USDT

<b>Производные:</b>
<code>ob</code> - bnc * ur (Bitcoin в рублях)
<code>oe</code> - eth * ur (Ethereum в рублях)

Для получения этой справки на английском, используйте /help_en`, botName)
}

func helpEN(botName string) string {
	return fmt.Sprintf(`
<b>🧮 Inline Mode Calculator</b>

Start typing the bot's username (<code>@%[1]v</code>) in any chat, followed by a mathematical expression. The result will appear in a pop-up window.

<b>Examples:</b>
<code>@%[1]v (237+78)/(66623-1000)</code>
<code>@%[1]v ur+1.5%%</code>
<code>@%[1]v ob+4%%</code>

<b>⚖️ Shortcuts:</b>
<code>ur</code> - CBR USD/RUB
<code>cr</code> - CBR CNY/RUB
<code>er</code> - CBR EUR/RUB
<code>eu</code> - EUR/USD (cross-rate)
<code>bnc</code> - Binance BTC/USDT
<code>eth</code> - Binance ETH/USDT

<b>Derivatives:</b>
<code>ob</code> - bnc * ur (Bitcoin in RUB)
<code>oe</code> - eth * ur (Ethereum in RUB)

To get this help in Russian, use /help`, botName)
}

func statsText(summary stats.Summary) string {
	return fmt.Sprintf(`
<b>📊 Статистика бота</b>

<b>Активные пользователи (DAU):</b> %v
<b>Активные пользователи (MAU):</b> %v

<b>Запросов сегодня:</b> %v
<b>Всего запросов:</b> %v`, summary.DAU, summary.MAU, summary.Today, summary.Total)
}

func fallbackText(botName string) string {
	return fmt.Sprintf("Я работаю в инлайн-режиме.\n\n"+
		"Просто начните печатать <code>@%v</code> и ваше выражение в любом чате.\n"+
		"Для получения подробной инструкции, отправьте команду /help.", botName)
}
