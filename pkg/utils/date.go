package utils

import (
	"time"
)

var wibLocation = loadWibLocation()

func loadWibLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		// tzdata may be missing in slim containers
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// GetWibTimeLocation returns the Asia/Jakarta location.
func GetWibTimeLocation() *time.Location {
	return wibLocation
}

// TimeNowWIB returns the current time in Western Indonesia Time.
func TimeNowWIB() time.Time {
	return time.Now().In(wibLocation)
}
