package engine

// Reason причина отказа в бронировании
type Reason string

const (
	ReasonInvalidWindow        Reason = "invalid_window"
	ReasonOutsideBusinessHours Reason = "outside_business_hours"
	ReasonDuringBreak          Reason = "during_break"
	ReasonConflict             Reason = "conflict"
)

// Outcome структурированный результат проверки кандидата
// Бизнес-отказы никогда не возвращаются как error: каждый отказ
// имеет типизированную причину, которую presentation-слой переводит
// в сообщение пользователю
type Outcome struct {
	Accepted       bool
	Reason         Reason   // Заполнен только при Accepted == false
	ConflictingIDs []string // Заполнен только при Reason == ReasonConflict
}

// Accept возвращает положительный результат проверки
func Accept() Outcome {
	return Outcome{Accepted: true}
}

// Reject возвращает отказ с указанной причиной
func Reject(reason Reason) Outcome {
	return Outcome{Accepted: false, Reason: reason}
}

// RejectConflict возвращает отказ из-за пересечения с существующими бронированиями
func RejectConflict(conflictingIDs []string) Outcome {
	return Outcome{
		Accepted:       false,
		Reason:         ReasonConflict,
		ConflictingIDs: conflictingIDs,
	}
}
