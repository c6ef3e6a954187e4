package navmi

// Utilities for working with https://github.com/tzneal/coordconv

import (
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

func hemisphereToRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	case coordconv.HemisphereInvalid:
		return '!'
	default:
		return '?'
	}
}

// GridReference formats a position as UTM zone, hemisphere, easting and
// northing, e.g. "19N 306130 4726010".
func GridReference(lat float64, lon float64) (string, error) {
	var latlng = s2.LatLngFromDegrees(lat, lon)

	var utm, err = coordconv.DefaultUTMConverter.ConvertFromGeodetic(latlng, 0)
	if err != nil {
		return "", fmt.Errorf("UTM conversion of %.6f,%.6f: %w", lat, lon, err)
	}

	return fmt.Sprintf("%d%c %.0f %.0f", utm.Zone, hemisphereToRune(utm.Hemisphere), utm.Easting, utm.Northing), nil
}
