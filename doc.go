// Package cronplan provides a Go library for building five-field cron
// expressions from high-level scheduling intent.
//
// Expression Building (pkg/cronexpr):
//   - EveryXMinutes / EveryXHours: step expressions like "*/5 * * * *"
//   - DailyAt / WeeklyAt / MonthlyAt / YearlyAt: fixed times of day
//   - WeekdaysAt / WeekendsAt: MON-FRI and SAT,SUN schedules
//   - DayAbbreviation / MonthAbbreviation: cron name codes from stdlib enums
//
// Support (pkg/common, pkg/metrics):
//   - errors: InvalidArgument error vocabulary with field-level detail
//   - validation: inclusive-range input checking
//   - metrics: optional Prometheus instrumentation for builders
//
// The library only formats expressions. It never parses externally
// supplied schedule strings and never schedules or executes anything;
// feed its output to a runner such as robfig/cron.
//
// Example usage:
//
// 	import "github.com/vnykmshr/cronplan/pkg/cronexpr"
//
// 	expr, err := cronexpr.DailyAt(14, 30) // "30 14 * * *"
// 	if err != nil {
// 		log.Fatal(err)
// 	}
//
// 	expr, err = cronexpr.WeekdaysAt(9, 0) // "0 9 * * MON-FRI"
package cronplan
