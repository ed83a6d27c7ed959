package normalize

// WeatherLookup maps a DateKey to the weather_id persisted for that date.
type WeatherLookup map[string]int64

// JoinWeather attaches weather ids to accidents by crash date. Accidents
// without weather for their date are dropped. It returns the joined rows
// and the number of dropped rows.
func JoinWeather(rows []AccidentRow, lookup WeatherLookup) ([]AccidentRow, int) {
	res := make([]AccidentRow, 0, len(rows))
	var unmatched int
	for _, r := range rows {
		id, ok := lookup[DateKey(r.CrashDate)]
		if !ok {
			unmatched++
			continue
		}
		r.WeatherID = id
		res = append(res, r)
	}
	return res, unmatched
}
