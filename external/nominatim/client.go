package nominatim

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
)

// Place is one search result from nominatim. Latitude and longitude come
// back as strings on the wire.
type Place struct {
	Latitude    float64 `json:"lat,string"`
	Longitude   float64 `json:"lon,string"`
	DisplayName string  `json:"display_name"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
}

type Client struct {
	endpoint string
	client   *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Search queries nominatim for places matching a free-text description.
func (c *Client) Search(query string) ([]Place, error) {
	q := url.URL{
		Path: "search.php",
		RawQuery: url.Values{
			"q":      []string{query},
			"format": []string{"json"},
		}.Encode(),
	}

	reqString := fmt.Sprintf("%s/%s", c.endpoint, q.String())
	log.WithField("prefix", "nominatim").WithField("req", reqString).Debug("request from nominatim")

	resp, err := c.client.Get(reqString)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("prefix", "nominatim").WithField("status", resp.StatusCode).Error("error response from nominatim")
		return nil, fmt.Errorf("fail to query address")
	}

	var places []Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, err
	}

	return places, nil
}
