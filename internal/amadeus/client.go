package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/skypulse/config"
	"github.com/Domenick1991/skypulse/internal/domain"
	"github.com/Domenick1991/skypulse/internal/mockdata"
)

// Client talks to the Amadeus self-service API. Responses are
// normalized to internal types here, at the collaborator boundary,
// never downstream. With useMock the client delegates to the synthetic
// generator and performs no network calls.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	generator  *mockdata.Generator

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg config.AmadeusConfig, generator *mockdata.Generator) *Client {
	if generator == nil {
		generator = mockdata.NewGenerator(nil)
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		generator:  generator,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type apiError struct {
	Errors []struct {
		Detail string `json:"detail"`
	} `json:"errors"`
}

// token returns a cached access token, refreshing it one minute before
// expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.apiKey},
		"client_secret": {c.apiSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.UpstreamError{Status: resp.StatusCode, Message: "failed to authenticate with Amadeus API"}
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	c.accessToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - time.Minute)
	return c.accessToken, nil
}

type flightOffersResponse struct {
	Data         []domain.FlightOffer `json:"data"`
	Dictionaries struct {
		Carriers map[string]string `json:"carriers"`
	} `json:"dictionaries"`
}

// SearchFlights queries flight offers for the given parameters.
func (c *Client) SearchFlights(ctx context.Context, params domain.SearchParams, useMock bool) (*domain.SearchResult, error) {
	if useMock {
		return c.generator.GenerateFlights(params), nil
	}

	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"originLocationCode":      {params.Origin},
		"destinationLocationCode": {params.Destination},
		"departureDate":           {params.DepartureDate},
		"adults":                  {strconv.Itoa(params.Adults)},
	}
	maxResults := params.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}
	query.Set("max", strconv.Itoa(maxResults))
	if params.ReturnDate != "" {
		query.Set("returnDate", params.ReturnDate)
	}
	if params.Children > 0 {
		query.Set("children", strconv.Itoa(params.Children))
	}
	if params.Infants > 0 {
		query.Set("infants", strconv.Itoa(params.Infants))
	}
	if params.CabinClass != "" {
		query.Set("travelClass", string(params.CabinClass))
	}

	var decoded flightOffersResponse
	if err := c.get(ctx, "/v2/shopping/flight-offers", query, token, &decoded); err != nil {
		return nil, err
	}
	return &domain.SearchResult{Flights: decoded.Data, Carriers: decoded.Dictionaries.Carriers}, nil
}

type locationsResponse struct {
	Data []struct {
		IATACode string `json:"iataCode"`
		Name     string `json:"name"`
		Address  struct {
			CityName    string `json:"cityName"`
			CountryCode string `json:"countryCode"`
			CountryName string `json:"countryName"`
		} `json:"address"`
	} `json:"data"`
}

// SearchAirports looks up airports and cities by free-text keyword.
func (c *Client) SearchAirports(ctx context.Context, keyword string, useMock bool) ([]domain.Airport, error) {
	if useMock {
		return mockdata.SearchAirports(keyword), nil
	}

	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"keyword":     {keyword},
		"subType":     {"AIRPORT,CITY"},
		"page[limit]": {"10"},
	}

	var decoded locationsResponse
	if err := c.get(ctx, "/v1/reference-data/locations", query, token, &decoded); err != nil {
		return nil, err
	}

	airports := make([]domain.Airport, 0, len(decoded.Data))
	for _, item := range decoded.Data {
		city := item.Address.CityName
		if city == "" {
			city = item.Name
		}
		airports = append(airports, domain.Airport{
			IATACode:    item.IATACode,
			Name:        item.Name,
			CityName:    city,
			CountryCode: item.Address.CountryCode,
			CountryName: item.Address.CountryName,
		})
	}
	return airports, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		message := "request failed"
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && len(apiErr.Errors) > 0 {
			message = apiErr.Errors[0].Detail
		}
		return &domain.UpstreamError{Status: resp.StatusCode, Message: message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
