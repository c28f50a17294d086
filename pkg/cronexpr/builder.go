package cronexpr

import (
	"strconv"
	"strings"
	"time"

	"github.com/vnykmshr/cronplan/pkg/common/validation"
)

// module is the name reported in validation errors.
const module = "cronexpr"

// Inclusive bounds for the numeric inputs.
const (
	minMinute          = 0
	maxMinute          = 59
	minHour            = 0
	maxHour            = 23
	minuteIntervalLow  = 1
	minuteIntervalHigh = 59
	hourIntervalLow    = 1
	hourIntervalHigh   = 23
	minDayOfMonth      = 1
	maxDayOfMonth      = 31
)

// Cron name codes indexed by time.Weekday (Sunday = 0) and
// time.Month - 1 (January = 1).
var (
	dayAbbreviations   = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
	monthAbbreviations = [12]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}
)

// join assembles the five cron fields. Field order and the single
// space separator live here and nowhere else.
func join(minute, hour, dom, month, dow string) string {
	return strings.Join([]string{minute, hour, dom, month, dow}, " ")
}

// Format renders a five-field cron expression from a literal minute
// and hour plus free-form day-of-month, month, and day-of-week field
// strings. It performs no validation; the named constructors validate
// before delegating here.
func Format(minute, hour int, dom, month, dow string) string {
	return join(strconv.Itoa(minute), strconv.Itoa(hour), dom, month, dow)
}

// EveryXMinutes returns an expression that fires every interval
// minutes, e.g. EveryXMinutes(5) == "*/5 * * * *".
// The interval must be between 1 and 59.
func EveryXMinutes(interval int) (string, error) {
	if err := validation.ValidateRange(module, "interval", interval, minuteIntervalLow, minuteIntervalHigh); err != nil {
		return "", err
	}
	return join("*/"+strconv.Itoa(interval), "*", "*", "*", "*"), nil
}

// EveryXHours returns an expression that fires every interval hours at
// the given minute, e.g. EveryXHours(2, 15) == "15 */2 * * *".
// The interval must be between 1 and 23 and the minute between 0 and 59.
func EveryXHours(interval, minute int) (string, error) {
	if err := validation.ValidateRange(module, "interval", interval, hourIntervalLow, hourIntervalHigh); err != nil {
		return "", err
	}
	if err := validation.ValidateRange(module, "minute", minute, minMinute, maxMinute); err != nil {
		return "", err
	}
	return join(strconv.Itoa(minute), "*/"+strconv.Itoa(interval), "*", "*", "*"), nil
}

// DailyAt returns an expression that fires once a day at the given
// time, e.g. DailyAt(9, 30) == "30 9 * * *".
func DailyAt(hour, minute int) (string, error) {
	if err := validateTimeOfDay(hour, minute); err != nil {
		return "", err
	}
	return Format(minute, hour, "*", "*", "*"), nil
}

// WeeklyAt returns an expression that fires once a week on the given
// weekday, e.g. WeeklyAt(time.Monday, 8, 0) == "0 8 * * MON".
func WeeklyAt(day time.Weekday, hour, minute int) (string, error) {
	dow, err := DayAbbreviation(day)
	if err != nil {
		return "", err
	}
	if err := validateTimeOfDay(hour, minute); err != nil {
		return "", err
	}
	return Format(minute, hour, "*", "*", dow), nil
}

// MonthlyAt returns an expression that fires once a month on the given
// day, e.g. MonthlyAt(15, 0, 0) == "0 0 15 * *".
// The day of month must be between 1 and 31.
func MonthlyAt(dayOfMonth, hour, minute int) (string, error) {
	if err := validation.ValidateRange(module, "dayOfMonth", dayOfMonth, minDayOfMonth, maxDayOfMonth); err != nil {
		return "", err
	}
	if err := validateTimeOfDay(hour, minute); err != nil {
		return "", err
	}
	return Format(minute, hour, strconv.Itoa(dayOfMonth), "*", "*"), nil
}

// YearlyAt returns an expression that fires once a year on the given
// month and day, e.g. YearlyAt(time.March, 1, 6, 0) == "0 6 1 MAR *".
func YearlyAt(month time.Month, dayOfMonth, hour, minute int) (string, error) {
	mon, err := MonthAbbreviation(month)
	if err != nil {
		return "", err
	}
	if err := validation.ValidateRange(module, "dayOfMonth", dayOfMonth, minDayOfMonth, maxDayOfMonth); err != nil {
		return "", err
	}
	if err := validateTimeOfDay(hour, minute); err != nil {
		return "", err
	}
	return Format(minute, hour, strconv.Itoa(dayOfMonth), mon, "*"), nil
}

// WeekdaysAt returns an expression that fires Monday through Friday at
// the given time, e.g. WeekdaysAt(9, 0) == "0 9 * * MON-FRI".
func WeekdaysAt(hour, minute int) (string, error) {
	if err := validateTimeOfDay(hour, minute); err != nil {
		return "", err
	}
	return Format(minute, hour, "*", "*", "MON-FRI"), nil
}

// WeekendsAt returns an expression that fires on Saturday and Sunday
// at the given time, e.g. WeekendsAt(9, 0) == "0 9 * * SAT,SUN".
func WeekendsAt(hour, minute int) (string, error) {
	if err := validateTimeOfDay(hour, minute); err != nil {
		return "", err
	}
	return Format(minute, hour, "*", "*", "SAT,SUN"), nil
}

// DayAbbreviation returns the three-letter cron code for a weekday:
// time.Sunday -> "SUN" through time.Saturday -> "SAT".
func DayAbbreviation(day time.Weekday) (string, error) {
	if err := validation.ValidateWeekday(module, "day", day); err != nil {
		return "", err
	}
	return dayAbbreviations[day], nil
}

// MonthAbbreviation returns the three-letter cron code for a month:
// time.January -> "JAN" through time.December -> "DEC".
func MonthAbbreviation(month time.Month) (string, error) {
	if err := validation.ValidateMonth(module, "month", month); err != nil {
		return "", err
	}
	return monthAbbreviations[month-1], nil
}

func validateTimeOfDay(hour, minute int) error {
	if err := validation.ValidateRange(module, "hour", hour, minHour, maxHour); err != nil {
		return err
	}
	return validation.ValidateRange(module, "minute", minute, minMinute, maxMinute)
}

// Builder exposes the expression constructors as methods so that
// wrappers such as MetricsBuilder can instrument them.
type Builder interface {
	EveryXMinutes(interval int) (string, error)
	EveryXHours(interval, minute int) (string, error)
	DailyAt(hour, minute int) (string, error)
	WeeklyAt(day time.Weekday, hour, minute int) (string, error)
	MonthlyAt(dayOfMonth, hour, minute int) (string, error)
	YearlyAt(month time.Month, dayOfMonth, hour, minute int) (string, error)
	WeekdaysAt(hour, minute int) (string, error)
	WeekendsAt(hour, minute int) (string, error)
}

// builder is the plain, uninstrumented Builder.
type builder struct{}

// New creates a Builder backed by the package-level constructors.
func New() Builder {
	return builder{}
}

func (builder) EveryXMinutes(interval int) (string, error) {
	return EveryXMinutes(interval)
}

func (builder) EveryXHours(interval, minute int) (string, error) {
	return EveryXHours(interval, minute)
}

func (builder) DailyAt(hour, minute int) (string, error) {
	return DailyAt(hour, minute)
}

func (builder) WeeklyAt(day time.Weekday, hour, minute int) (string, error) {
	return WeeklyAt(day, hour, minute)
}

func (builder) MonthlyAt(dayOfMonth, hour, minute int) (string, error) {
	return MonthlyAt(dayOfMonth, hour, minute)
}

func (builder) YearlyAt(month time.Month, dayOfMonth, hour, minute int) (string, error) {
	return YearlyAt(month, dayOfMonth, hour, minute)
}

func (builder) WeekdaysAt(hour, minute int) (string, error) {
	return WeekdaysAt(hour, minute)
}

func (builder) WeekendsAt(hour, minute int) (string, error) {
	return WeekendsAt(hour, minute)
}
