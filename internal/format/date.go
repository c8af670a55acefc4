package format

import (
	"fmt"
	"time"
)

const unknownDate = "تاريخ غير معروف"
const unknownTime = "وقت غير معروف"

var arabicMonths = map[time.Month]string{
	time.January:   "يناير",
	time.February:  "فبراير",
	time.March:     "مارس",
	time.April:     "أبريل",
	time.May:       "مايو",
	time.June:      "يونيو",
	time.July:      "يوليو",
	time.August:    "أغسطس",
	time.September: "سبتمبر",
	time.October:   "أكتوبر",
	time.November:  "نوفمبر",
	time.December:  "ديسمبر",
}

var arabicWeekdays = map[time.Weekday]string{
	time.Sunday:    "الأحد",
	time.Monday:    "الاثنين",
	time.Tuesday:   "الثلاثاء",
	time.Wednesday: "الأربعاء",
	time.Thursday:  "الخميس",
	time.Friday:    "الجمعة",
	time.Saturday:  "السبت",
}

// ArabicDate formats a timestamp as "weekday, day month year" in Arabic.
func ArabicDate(t time.Time) string {
	if t.IsZero() {
		return unknownDate
	}
	return fmt.Sprintf("%s، %d %s %d",
		arabicWeekdays[t.Weekday()], t.Day(), arabicMonths[t.Month()], t.Year())
}

// ArabicTime formats a timestamp as 12-hour Arabic clock time.
func ArabicTime(t time.Time) string {
	if t.IsZero() {
		return unknownTime
	}

	hours := t.Hour()
	minutes := t.Minute()

	switch {
	case hours < 12:
		return fmt.Sprintf("%d:%02d صباحاً", hours, minutes)
	case hours == 12:
		return fmt.Sprintf("%d:%02d ظهراً", hours, minutes)
	default:
		return fmt.Sprintf("%d:%02d مساءً", hours-12, minutes)
	}
}

// WaitMinutes formats an estimated wait in minutes.
func WaitMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d دقيقة", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d ساعة", hours)
	}
	return fmt.Sprintf("%d ساعة %d دقيقة", hours, mins)
}
