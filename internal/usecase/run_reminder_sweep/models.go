package run_reminder_sweep

import "time"

// Report итоги одного прохода рассылки напоминаний
type Report struct {
	TargetDate time.Time // дата, на которую рассылались напоминания
	Scanned    int       // записей найдено
	Sent       int       // напоминаний отправлено
	Skipped    int       // пропущено (флаг уже выставлен другим процессом)
	Failed     int       // ошибок при выставлении флага
}
