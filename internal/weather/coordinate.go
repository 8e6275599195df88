// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"fmt"
	"math"
)

// coordPrecision is the precision used to quantize coordinates (0.01 degrees ≈ 1.1 km)
const coordPrecision = 1e-2

// Coordinate represents a geographic coordinate.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Valid checks if the coordinate is valid according to the EPSG logic
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.2f,%.2f", c.Lat, c.Lon)
}

func quantizeCoord(val float64) int32 {
	return int32(math.Round(val / coordPrecision))
}
