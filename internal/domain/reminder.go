package domain

// ReminderFailure - локальная ошибка одной задачи внутри батча.
// Задача остается reminder_sent = false и будет выбрана в следующий запуск.
type ReminderFailure struct {
	TaskID int64
	Reason string
}

// ReminderReport - итог одного запуска диспетчера напоминаний.
// Ошибки отдельных задач возвращаются данными, а не пробрасываются.
type ReminderReport struct {
	Processed int
	Succeeded []int64
	Failures  []ReminderFailure
}
