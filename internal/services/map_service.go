package services

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-polyline"

	"trippy/internal/models/response_models"
)

const NoMapDataNotice = "No map data available for this itinerary."

type MapServiceInterface interface {
	// Legs connects consecutive stops only; n stops give n-1 legs.
	Legs(stops []response_models.MapStop) []response_models.Leg
	EncodePolyline(stops []response_models.MapStop) string
	FeatureCollection(stops []response_models.MapStop) *geojson.FeatureCollection
	Decorate(result *response_models.ItineraryResult, withGeoJSON bool)
}

type MapService struct{}

func NewMapService() MapServiceInterface {
	return &MapService{}
}

func point(c response_models.Coordinates) orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

func (s *MapService) Legs(stops []response_models.MapStop) []response_models.Leg {
	legs := make([]response_models.Leg, 0, max(len(stops)-1, 0))
	for i := 1; i < len(stops); i++ {
		d := geo.DistanceHaversine(point(stops[i-1].Coordinates), point(stops[i].Coordinates))
		legs = append(legs, response_models.Leg{
			From:           i,
			To:             i + 1,
			DistanceMeters: int(math.Round(d)),
		})
	}
	return legs
}

func (s *MapService) EncodePolyline(stops []response_models.MapStop) string {
	if len(stops) < 2 {
		return ""
	}
	coords := make([][]float64, 0, len(stops))
	for _, st := range stops {
		coords = append(coords, []float64{st.Coordinates.Lat, st.Coordinates.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

// FeatureCollection has one Point per stop and, with two or more stops, a
// LineString through all of them in order.
func (s *MapService) FeatureCollection(stops []response_models.MapStop) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	line := make(orb.LineString, 0, len(stops))
	for i, st := range stops {
		p := point(st.Coordinates)
		f := geojson.NewFeature(p)
		f.Properties["position"] = i + 1
		f.Properties["place"] = st.Place
		f.Properties["address"] = st.Address
		f.Properties["start_time"] = st.StartTime
		f.Properties["end_time"] = st.EndTime
		f.Properties["activity"] = st.Activity
		fc.Append(f)
		line = append(line, p)
	}
	if len(line) >= 2 {
		f := geojson.NewFeature(line)
		f.Properties["kind"] = "route"
		fc.Append(f)
	}
	return fc
}

// Decorate fills the derived map fields of an assembled result.
func (s *MapService) Decorate(result *response_models.ItineraryResult, withGeoJSON bool) {
	if len(result.MapData) == 0 {
		result.Legs = []response_models.Leg{}
		result.Notice = NoMapDataNotice
		return
	}
	result.Legs = s.Legs(result.MapData)
	result.EncodedPolyline = s.EncodePolyline(result.MapData)
	if withGeoJSON {
		result.GeoJSON = s.FeatureCollection(result.MapData)
	}
}
