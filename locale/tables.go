package locale

import "golang.org/x/text/language"

// English names.
var English = Table{
	Tag: language.AmericanEnglish,
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthsShort: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	WeekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Planets:       [7]string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn"},
	Zodiac: [12]string{
		"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
		"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
	},
}

// German names.
var German = Table{
	Tag: language.German,
	Months: [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	MonthsShort: [12]string{
		"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
		"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
	},
	Weekdays:      [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	WeekdaysShort: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	Planets:       [7]string{"Sonne", "Mond", "Mars", "Merkur", "Jupiter", "Venus", "Saturn"},
	Zodiac: [12]string{
		"Widder", "Stier", "Zwillinge", "Krebs", "Löwe", "Jungfrau",
		"Waage", "Skorpion", "Schütze", "Steinbock", "Wassermann", "Fische",
	},
}
