package response_models

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb/geojson"
)

// Stop is one waypoint extracted from model output. Every field is an
// untrusted display string; only Name and Address feed the place lookup.
type Stop struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Activity     string `json:"activity"`
	TravelMethod string `json:"travel_method"`
	TravelTime   string `json:"travel_time"`
	Cost         string `json:"cost"`
}

// Coordinates serialises as [lat, lon], the order map widgets expect.
type Coordinates struct {
	Lat float64
	Lon float64
}

func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lat, c.Lon})
}

func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinates: want [lat, lon], got %d values", len(pair))
	}
	c.Lat, c.Lon = pair[0], pair[1]
	return nil
}

type MapStop struct {
	Place        string      `json:"place"`
	Coordinates  Coordinates `json:"coordinates"`
	Address      string      `json:"address"`
	StartTime    string      `json:"start_time"`
	EndTime      string      `json:"end_time"`
	Activity     string      `json:"activity"`
	TravelMethod string      `json:"travel_method"`
	TravelTime   string      `json:"travel_time"`
	Cost         string      `json:"cost"`
}

func NewMapStop(stop Stop, coords Coordinates) MapStop {
	return MapStop{
		Place:        stop.Name,
		Coordinates:  coords,
		Address:      stop.Address,
		StartTime:    stop.StartTime,
		EndTime:      stop.EndTime,
		Activity:     stop.Activity,
		TravelMethod: stop.TravelMethod,
		TravelTime:   stop.TravelTime,
		Cost:         stop.Cost,
	}
}

// Leg connects two consecutive map stops; From and To are 1-based positions in MapData.
type Leg struct {
	From           int `json:"from"`
	To             int `json:"to"`
	DistanceMeters int `json:"distance_meters"`
}

type ItineraryResult struct {
	Itinerary       string                     `json:"itinerary"`
	MapData         []MapStop                  `json:"map_data"`
	Legs            []Leg                      `json:"legs"`
	EncodedPolyline string                     `json:"encoded_polyline,omitempty"`
	Notice          string                     `json:"notice,omitempty"`
	GeoJSON         *geojson.FeatureCollection `json:"geojson,omitempty"`
}
