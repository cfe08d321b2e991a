package models

// WeatherReading is one parsed current-weather response. All temperatures are
// in Kelvin, exactly as the upstream API delivers them; conversion to the
// selected display unit happens at format time. Readings are built fresh per
// fetch and never persisted.
type WeatherReading struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	TempKelvin      float64 `json:"tempKelvin"`
	FeelsLikeKelvin float64 `json:"feelsLikeKelvin"`
	MinKelvin       float64 `json:"minKelvin"`
	MaxKelvin       float64 `json:"maxKelvin"`
	Humidity        int     `json:"humidity"`
	WindSpeed       float64 `json:"windSpeed"`
}
