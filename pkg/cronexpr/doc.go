// Package cronexpr builds five-field cron expressions from high-level
// scheduling intent.
//
// Every constructor validates its numeric inputs against the documented
// inclusive ranges before any formatting happens, and either returns a
// complete "minute hour day-of-month month day-of-week" expression or an
// error wrapping errors.ErrInvalidArgument. Nothing is parsed, scheduled,
// or executed; the output string is meant to be handed to a cron runner
// such as robfig/cron.
//
// Basic Usage:
//
// 	expr, err := cronexpr.EveryXMinutes(5)
// 	// "*/5 * * * *"
//
// 	expr, err = cronexpr.DailyAt(14, 30)
// 	// "30 14 * * *"
//
// 	expr, err = cronexpr.WeeklyAt(time.Monday, 8, 0)
// 	// "0 8 * * MON"
//
// 	expr, err = cronexpr.WeekdaysAt(9, 0)
// 	// "0 9 * * MON-FRI"
//
// Day-of-week and month values are the stdlib time.Weekday and
// time.Month enumerations; the package never defines its own calendar
// types. Out-of-range casts such as time.Weekday(7) are rejected.
//
// All constructors are pure functions: identical inputs always yield
// byte-identical output, with no dependency on wall-clock time or
// locale, and they are safe for concurrent use without locking.
//
// For instrumented construction, wrap a Builder with metrics:
//
// 	b := cronexpr.NewWithMetrics("report_schedules")
// 	expr, err := b.DailyAt(2, 0)
package cronexpr
