package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	"github.com/kmalkova/SRS-ReservationService/pkg/dbmetrics"
	"github.com/kmalkova/SRS-ReservationService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения SQL запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с расписанием магазинов
// Хранит недельные часы работы и повторяющиеся перерывы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklySchedule получает недельное расписание магазина
// Возвращает ErrScheduleNotFound, если у магазина нет ни одной строки расписания
func (r *Repository) GetWeeklySchedule(ctx context.Context, shopID int64) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"open_time",
		"close_time",
	).
		From("shop_day_hours").
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := domain.WeeklySchedule{}
	for rows.Next() {
		var weekday int
		var day domain.DayHours

		if err := rows.Scan(&weekday, &day.IsOpen, &day.Open, &day.Close); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklySchedule - scan row: %v", ErrScanRow, err)
		}

		schedule[time.Weekday(weekday)] = day
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklySchedule - rows error: %v", ErrScanRow, err)
	}

	if len(schedule) == 0 {
		return nil, ErrScheduleNotFound
	}

	return schedule, nil
}

// GetBreakWindows получает список перерывов магазина
func (r *Repository) GetBreakWindows(ctx context.Context, shopID int64) ([]domain.BreakWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"start_time",
		"end_time",
	).
		From("shop_break_windows").
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBreakWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBreakWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	breaks := make([]domain.BreakWindow, 0)
	for rows.Next() {
		var b domain.BreakWindow
		if err := rows.Scan(&b.Start, &b.End); err != nil {
			return nil, fmt.Errorf("%w: GetBreakWindows - scan row: %v", ErrScanRow, err)
		}
		breaks = append(breaks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBreakWindows - rows error: %v", ErrScanRow, err)
	}

	return breaks, nil
}

// ReplaceSchedule полностью заменяет расписание и перерывы магазина
// Вызывается сервисом расписаний внутри транзакции, чтобы параллельные
// проверки доступности не увидели наполовину обновленное расписание
func (r *Repository) ReplaceSchedule(ctx context.Context, shopID int64, schedule domain.WeeklySchedule, breaks []domain.BreakWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Удаляем старое расписание
	query, args, err := psqlbuilder.Delete("shop_day_hours").
		Where(squirrel.Eq{"shop_id": shopID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build delete hours query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - delete hours: %v", ErrExecQuery, err)
	}

	query, args, err = psqlbuilder.Delete("shop_break_windows").
		Where(squirrel.Eq{"shop_id": shopID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build delete breaks query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - delete breaks: %v", ErrExecQuery, err)
	}

	// Вставляем семь строк дней недели
	insertHours := psqlbuilder.Insert("shop_day_hours").
		Columns("shop_id", "weekday", "is_open", "open_time", "close_time")

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day := schedule.ForDay(weekday)

		var open, close interface{}
		if day.IsOpen {
			open, close = day.Open, day.Close
		}

		insertHours = insertHours.Values(shopID, int(weekday), day.IsOpen, open, close)
	}

	query, args, err = insertHours.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build insert hours query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - insert hours: %v", ErrExecQuery, err)
	}

	if len(breaks) == 0 {
		return nil
	}

	insertBreaks := psqlbuilder.Insert("shop_break_windows").
		Columns("shop_id", "start_time", "end_time")
	for _, b := range breaks {
		insertBreaks = insertBreaks.Values(shopID, b.Start, b.End)
	}

	query, args, err = insertBreaks.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build insert breaks query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - insert breaks: %v", ErrExecQuery, err)
	}

	return nil
}
