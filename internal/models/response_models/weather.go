package response_models

type WeatherReport struct {
	Forecast        string `json:"forecast"`
	Temperature     string `json:"temperature,omitempty"`
	Advice          string `json:"advice"`
	OutdoorFriendly bool   `json:"outdoor_friendly"`
}
