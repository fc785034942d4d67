package hifitime

// Month names the twelve Gregorian months, 1-indexed so the zero value is
// recognizably "not a month" rather than January.
type Month int

const (
	notAMonth Month = iota
	January
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// Weekday names the seven days of the week, Monday-first to match the ISO
// week-date convention used by the Gregorian display code.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (w Weekday) String() string {
	names := [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if w < Monday || w > Sunday {
		return "Unknown"
	}
	return names[w]
}

func (m Month) String() string {
	names := [...]string{"", "January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	if m < January || m > December {
		return "Unknown"
	}
	return names[m]
}

var (
	daysPerNonLeapMonth = [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysPerLeapMonth    = [...]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	// cumulativeDaysForMonth[m] is the number of days before month m begins
	// in a non-leap year, mirroring original_source's CUMULATIVE_DAYS_FOR_MONTH.
	cumulativeDaysForMonth = [...]int{
		0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334,
	}
)

// IsLeapYear returns true if year is a leap year in the proleptic Gregorian
// calendar. Unlike the teacher's version this accepts any integer year,
// including years before 1 and negative (astronomical) years, since Epoch
// supports dates well outside the civil calendar's usual range.
func IsLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}

// daysInMonth returns the number of days in the given month (1-12) of year.
func daysInMonth(year int, month int) int {
	if IsLeapYear(year) {
		return daysPerLeapMonth[month]
	}
	return daysPerNonLeapMonth[month]
}

// dayOfYear returns the 1-indexed ordinal day of (year, month, day) within
// its year.
func dayOfYear(year, month, day int) int {
	doy := cumulativeDaysForMonth[month] + day
	if month > int(February) && IsLeapYear(year) {
		doy++
	}
	return doy
}

// isGregorianValid reports whether the given civil date/time/nanosecond
// tuple is a legal Gregorian instant, per spec.md's Carry edge case.
func isGregorianValid(year, month, day, hour, minute, second, nanos int) bool {
	if month < int(January) || month > int(December) {
		return false
	}
	if day < 1 || day > daysInMonth(year, month) {
		return false
	}
	// hour 24 is a legal boundary value naming the instant at the start of
	// the following day.
	if hour < 0 || hour > 24 {
		return false
	}
	if minute < 0 || minute > 59 {
		return false
	}
	if second == 60 {
		// second 60 only names a real leap second insertion: 23:59:60 on a
		// June 30 or December 31 that the leap-second table actually
		// registers an IERS announcement for.
		if hour != 23 || minute != 59 || !isRecognizedLeapSecondBoundary(year, month, day) {
			return false
		}
	} else if second < 0 || second > 59 {
		return false
	}
	if nanos < 0 || nanos > 999_999_999 {
		return false
	}
	return true
}

// isRecognizedLeapSecondBoundary reports whether (year, month, day) is the
// last day of June or December AND the leap-second table carries an
// announced IERS entry taking effect at the following midnight, i.e. this
// civil date really does end with an inserted leap second.
func isRecognizedLeapSecondBoundary(year, month, day int) bool {
	isJune30 := month == int(June) && day == 30
	isDec31 := month == int(December) && day == 31
	if !isJune30 && !isDec31 {
		return false
	}

	const unixEpochJDN = 2440588 // gregorianToJDN(1970, 1, 1)
	nextDayUnixUTC := (gregorianToJDN(year, month, day) + 1 - unixEpochJDN) * SecondsPerDay

	leaplock.RLock()
	defer leaplock.RUnlock()
	for _, e := range leapSeconds {
		if e.unixUTC == nextDayUnixUTC {
			return e.announced
		}
	}
	return false
}

// gregorianToJDN converts a proleptic Gregorian calendar date to a Julian
// Day Number, using the standard Fliegel & Van Flandern algorithm.
func gregorianToJDN(year, month, day int) int64 {
	a := (14 - month) / 12
	y := int64(year) + 4800 - int64(a)
	m := int64(month) + 12*int64(a) - 3
	return int64(day) + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnToGregorian is the inverse of gregorianToJDN.
func jdnToGregorian(jdn int64) (year, month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - (146097*b)/4
	d := (4*c + 3) / 1461
	e := c - (1461*d)/4
	m := (5*e + 2) / 153

	day = int(e - (153*m+2)/5 + 1)
	month = int(m + 3 - 12*(m/10))
	year = int(100*b + d - 4800 + m/10)
	return year, month, day
}
