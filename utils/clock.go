package utils

import "time"

// HotelZone is the fixed hotel-local zone (UTC+8). Cleaning dates and
// deletion timestamps use it so day boundaries don't drift with the server's
// own clock zone.
var HotelZone = time.FixedZone("UTC+8", 8*60*60)

func NowLocal() time.Time {
	return time.Now().In(HotelZone)
}

// TodayLocal returns today's hotel-local calendar date as yyyy-MM-dd.
func TodayLocal() string {
	return NowLocal().Format("2006-01-02")
}
