// Package timeutil — форматирование временных меток для списков.
package timeutil

import (
	"fmt"
	"time"
)

// RelativeTime возвращает человекочитаемую давность t относительно now:
//
//	< 1 часа   -> "just now"
//	< 24 часов -> "N hour(s) ago"
//	< 30 дней  -> "N day(s) ago"
//	иначе      -> "N month(s) ago" (месяц считается как 30 дней)
//
// now передаётся параметром, чтобы функция оставалась чистой и
// тестировалась без обращения к системным часам.
func RelativeTime(now, t time.Time) string {
	hours := int(now.Sub(t).Hours())

	if hours < 1 {
		return "just now"
	}
	if hours < 24 {
		return fmt.Sprintf("%d %s ago", hours, plural(hours, "hour"))
	}

	days := hours / 24
	if days < 30 {
		return fmt.Sprintf("%d %s ago", days, plural(days, "day"))
	}

	months := days / 30
	return fmt.Sprintf("%d %s ago", months, plural(months, "month"))
}

// PostedLabel — подпись для карточки заявки: "Posted 3 days ago".
func PostedLabel(now, t time.Time) string {
	return "Posted " + RelativeTime(now, t)
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
