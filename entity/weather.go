package entity

import "time"

type WeatherCondition string

const (
	WeatherSunny  WeatherCondition = "sunny"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRainy  WeatherCondition = "rainy"
	WeatherStormy WeatherCondition = "stormy"
)

type WeatherData struct {
	LotID       int              `json:"lot_id"`
	Condition   WeatherCondition `json:"condition"`
	Temperature float64          `json:"temperature"`
	Humidity    float64          `json:"humidity"`
	Rainfall    float64          `json:"rainfall"`
	WindSpeed   float64          `json:"wind_speed"`
	Timestamp   time.Time        `json:"timestamp"`
}

type WeatherResponse struct {
	CurrentWeather      []WeatherData `json:"current_weather"`
	FavorableConditions int           `json:"favorable_conditions"`
	WeatherAlerts       int           `json:"weather_alerts"`
}
