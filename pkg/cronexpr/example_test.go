package cronexpr_test

import (
	"fmt"
	"time"

	"github.com/vnykmshr/cronplan/pkg/cronexpr"
)

// Example demonstrates building the most common expression kinds.
func Example() {
	everyFive, _ := cronexpr.EveryXMinutes(5)
	daily, _ := cronexpr.DailyAt(14, 30)
	weekdays, _ := cronexpr.WeekdaysAt(9, 0)

	fmt.Println(everyFive)
	fmt.Println(daily)
	fmt.Println(weekdays)

	// Output:
	// */5 * * * *
	// 30 14 * * *
	// 0 9 * * MON-FRI
}

// ExampleWeeklyAt demonstrates weekday scheduling with time.Weekday.
func ExampleWeeklyAt() {
	expr, err := cronexpr.WeeklyAt(time.Monday, 8, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(expr)

	// Output: 0 8 * * MON
}

// ExampleFormat demonstrates the unchecked low-level formatter.
func ExampleFormat() {
	// Format joins the five fields as given; the named constructors
	// validate before delegating to it.
	fmt.Println(cronexpr.Format(30, 9, "*", "MAR", "MON-FRI"))

	// Output: 30 9 * MAR MON-FRI
}

// Example_invalidInput demonstrates the invalid-argument error class.
func Example_invalidInput() {
	_, err := cronexpr.EveryXMinutes(60)
	fmt.Println(err)

	// Output: cronexpr: invalid interval=60 (must be between 1 and 59) - use a value from 1 to 59
}

// ExampleDayAbbreviation demonstrates the weekday name codes.
func ExampleDayAbbreviation() {
	for day := time.Sunday; day <= time.Saturday; day++ {
		code, _ := cronexpr.DayAbbreviation(day)
		fmt.Printf("%s ", code)
	}
	fmt.Println()

	// Output: SUN MON TUE WED THU FRI SAT
}

// Example_builder demonstrates the Builder interface form.
func Example_builder() {
	b := cronexpr.New()

	expr, _ := b.MonthlyAt(1, 3, 30)
	fmt.Println(expr)

	expr, _ = b.YearlyAt(time.December, 24, 18, 0)
	fmt.Println(expr)

	// Output:
	// 30 3 1 * *
	// 0 18 24 DEC *
}
