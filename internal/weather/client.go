package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const openWeatherEndpoint = "https://api.openweathermap.org/data/2.5/forecast"

// Forecast is one day's weather summary for a destination.
type Forecast struct {
	City        string  `json:"city"`
	Date        string  `json:"date"`
	Temperature Temps   `json:"temperature"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

type Temps struct {
	Day float64 `json:"day"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Client wraps the OpenWeather 5-day forecast API.
type Client struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:   apiKey,
		endpoint: openWeatherEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether an API key is present. Used by the health check.
func (c *Client) Configured() bool { return c.apiKey != "" }

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
}

// Forecast returns a daily summary for city on the given date. The upstream
// API returns 3-hour slots for the next five days; slots for the requested
// date are aggregated, with the slot closest to midday picked as the daytime
// temperature. Dates outside the five-day window yield an error.
func (c *Client) Forecast(ctx context.Context, city, country string, date time.Time) (*Forecast, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather: api key not configured")
	}

	q := city
	if country != "" {
		q += "," + country
	}
	reqURL := fmt.Sprintf("%s?q=%s&units=metric&appid=%s", c.endpoint, url.QueryEscape(q), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("weather: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather: upstream status %d: %s", resp.StatusCode, body)
	}

	var fr forecastResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return nil, fmt.Errorf("weather: unmarshal response: %w", err)
	}

	wantDate := date.UTC().Format("2006-01-02")
	midday := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC)

	out := &Forecast{City: fr.City.Name, Date: wantDate}
	var found bool
	var bestGap time.Duration
	for _, slot := range fr.List {
		slotTime := time.Unix(slot.Dt, 0).UTC()
		if slotTime.Format("2006-01-02") != wantDate {
			continue
		}
		if !found {
			out.Temperature.Min = slot.Main.TempMin
			out.Temperature.Max = slot.Main.TempMax
		} else {
			if slot.Main.TempMin < out.Temperature.Min {
				out.Temperature.Min = slot.Main.TempMin
			}
			if slot.Main.TempMax > out.Temperature.Max {
				out.Temperature.Max = slot.Main.TempMax
			}
		}
		gap := slotTime.Sub(midday)
		if gap < 0 {
			gap = -gap
		}
		if !found || gap < bestGap {
			bestGap = gap
			out.Temperature.Day = slot.Main.Temp
			out.Humidity = slot.Main.Humidity
			out.WindSpeed = slot.Wind.Speed
			if len(slot.Weather) > 0 {
				out.Condition = slot.Weather[0].Main
				out.Description = slot.Weather[0].Description
			}
		}
		found = true
	}
	if !found {
		return nil, fmt.Errorf("weather: no forecast available for %s", wantDate)
	}
	return out, nil
}
