// Package weather proxies current conditions from wttr.in, which needs no
// API key. The fetch is bounded by its own deadline and never touches the
// table-write path, so a slow upstream cannot stall store operations.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Sentinel errors distinguishing why a fetch failed. Handlers map them to
// distinct HTTP statuses.
var (
	ErrTimeout     = errors.New("weather: request timed out")
	ErrUnavailable = errors.New("weather: service unavailable")
	ErrBadPayload  = errors.New("weather: could not parse weather data")
)

// ForecastDay is a single day of the three-day outlook.
type ForecastDay struct {
	Date       string `json:"date"`
	Max        int    `json:"max"`
	Min        int    `json:"min"`
	Desc       string `json:"desc"`
	RainChance string `json:"rain_chance"`
}

// Report is the reshaped payload returned to clients.
type Report struct {
	City        string        `json:"city"`
	State       string        `json:"state"`
	Country     string        `json:"country"`
	TempC       int           `json:"temp_c"`
	FeelsLike   int           `json:"feels_like"`
	Humidity    int           `json:"humidity"`
	WindSpeed   int           `json:"wind_speed"`
	WindDir     string        `json:"wind_dir"`
	Description string        `json:"description"`
	UV          int           `json:"uv"`
	Visibility  int           `json:"visibility"`
	CloudCover  int           `json:"cloud_cover"`
	Pressure    int           `json:"pressure"`
	Forecast    []ForecastDay `json:"forecast"`
}

// Client fetches and reshapes wttr.in responses. BaseURL is overridable for
// tests; Timeout bounds one whole fetch including body read.
type Client struct {
	BaseURL string
	Timeout time.Duration
	httpc   *http.Client
}

// NewClient returns a Client talking to wttr.in with the given timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		BaseURL: "https://wttr.in",
		Timeout: timeout,
		httpc:   &http.Client{},
	}
}

// Fetch retrieves current conditions and a three-day forecast for city.
func (c *Client) Fetch(ctx context.Context, city string) (Report, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	u := fmt.Sprintf("%s/%s?format=j1", c.BaseURL, url.PathEscape(city))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", "FarmConnect/1.0")

	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Report{}, ErrTimeout
		}
		return Report{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Report{}, ErrTimeout
		}
		return Report{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return reshape(raw, city)
}

// ----- wttr.in j1 wire format (the subset we read) -----

type wttrValue struct {
	Value string `json:"value"`
}

type wttrPayload struct {
	CurrentCondition []struct {
		TempC          string      `json:"temp_C"`
		FeelsLikeC     string      `json:"FeelsLikeC"`
		Humidity       string      `json:"humidity"`
		WindspeedKmph  string      `json:"windspeedKmph"`
		Winddir16Point string      `json:"winddir16Point"`
		WeatherDesc    []wttrValue `json:"weatherDesc"`
		UVIndex        string      `json:"uvIndex"`
		Visibility     string      `json:"visibility"`
		Cloudcover     string      `json:"cloudcover"`
		Pressure       string      `json:"pressure"`
	} `json:"current_condition"`
	NearestArea []struct {
		AreaName []wttrValue `json:"areaName"`
		Region   []wttrValue `json:"region"`
		Country  []wttrValue `json:"country"`
	} `json:"nearest_area"`
	Weather []struct {
		Date     string `json:"date"`
		MaxtempC string `json:"maxtempC"`
		MintempC string `json:"mintempC"`
		Hourly   []struct {
			WeatherDesc  []wttrValue `json:"weatherDesc"`
			Chanceofrain string      `json:"chanceofrain"`
		} `json:"hourly"`
	} `json:"weather"`
}

// reshape converts a raw j1 body into a Report. Any structural surprise in
// the payload yields ErrBadPayload.
func reshape(raw []byte, city string) (Report, error) {
	var p wttrPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if len(p.CurrentCondition) == 0 {
		return Report{}, ErrBadPayload
	}
	curr := p.CurrentCondition[0]

	rep := Report{
		City:        city,
		Country:     "India",
		TempC:       atoi(curr.TempC),
		FeelsLike:   atoi(curr.FeelsLikeC),
		Humidity:    atoi(curr.Humidity),
		WindSpeed:   atoi(curr.WindspeedKmph),
		WindDir:     curr.Winddir16Point,
		Description: first(curr.WeatherDesc),
		UV:          atoi(curr.UVIndex),
		Visibility:  atoi(curr.Visibility),
		CloudCover:  atoi(curr.Cloudcover),
		Pressure:    atoi(curr.Pressure),
		Forecast:    []ForecastDay{},
	}
	if len(p.NearestArea) > 0 {
		area := p.NearestArea[0]
		if v := first(area.AreaName); v != "" {
			rep.City = v
		}
		rep.State = first(area.Region)
		if v := first(area.Country); v != "" {
			rep.Country = v
		}
	}
	for i, d := range p.Weather {
		if i == 3 {
			break
		}
		day := ForecastDay{
			Date:       d.Date,
			Max:        atoi(d.MaxtempC),
			Min:        atoi(d.MintempC),
			RainChance: "0",
		}
		// Midday slot gives the most representative description.
		if len(d.Hourly) > 4 {
			day.Desc = first(d.Hourly[4].WeatherDesc)
			if d.Hourly[4].Chanceofrain != "" {
				day.RainChance = d.Hourly[4].Chanceofrain
			}
		}
		rep.Forecast = append(rep.Forecast, day)
	}
	return rep, nil
}

func first(vs []wttrValue) string {
	if len(vs) > 0 {
		return vs[0].Value
	}
	return ""
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
