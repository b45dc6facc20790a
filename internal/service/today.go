package service

import "time"

// FixedZone фиксированное смещение UTC+3, в котором считаются
// границы "сегодня" и форматируется время в уведомлениях.
// Таймзона сервера и клиента не участвуют.
var FixedZone = time.FixedZone("UTC+3", 3*60*60)

// TodayWindow возвращает границы текущих суток [from, to)
// в фиксированном смещении UTC+3.
func TodayWindow(now time.Time) (time.Time, time.Time) {
	local := now.In(FixedZone)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, FixedZone)
	to := from.Add(24 * time.Hour)
	return from, to
}
