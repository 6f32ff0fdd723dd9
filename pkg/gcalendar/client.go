package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials
// JSON file path (Service Account or OAuth Desktop app).
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials
// JSON bytes. Service Account keys are tried first; OAuth Desktop app
// credentials need a sibling token.json with a valid refresh token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	if oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use a Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// ListEvents lists events in [TimeMin, TimeMax], expanded and ordered by
// start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = 50
	}

	call := c.service.Events.List(calendarID(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResults).
		Context(ctx)

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			HtmlLink:    item.HtmlLink,
			StartTime:   parseEventTime(item.Start),
			EndTime:     parseEventTime(item.End),
		})
	}
	return events, nil
}

// DeleteEvent removes an event by ID.
func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	if err := c.service.Events.Delete(calendarID(calID), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

func calendarID(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}

func parseEventTime(edt *calendar.EventDateTime) time.Time {
	if edt == nil {
		return time.Time{}
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t
		}
	}
	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
