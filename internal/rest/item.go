package rest

import "encoding/json"

// Item is a named automation entity exposed by the server's REST API: a
// sensor, an actuator, or a group aggregating other items. Read-only from
// this side; every value is created fresh per response.
type Item struct {
	Name    string    `json:"name"`
	Label   string    `json:"label,omitempty"`
	State   string    `json:"state"`
	Type    string    `json:"type"`
	Members []Item    `json:"members,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// GroupType marks an item whose state aggregates its members.
const GroupType = "Group"

// IsGroup reports whether the item carries member items.
func (i *Item) IsGroup() bool {
	return i.Type == GroupType
}

// NotFound reports whether the response represents a missing item. A body
// with an error field carries no display data.
func (i *Item) NotFound() bool {
	return i.Error != nil
}

// APIError is the error envelope the server embeds in item responses.
// Older servers send a bare string, newer ones an object with a message.
type APIError struct {
	Message  string `json:"message"`
	HTTPCode int    `json:"http-code,omitempty"`
}

// UnmarshalJSON accepts both the string and the object form.
func (e *APIError) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Message = s
		return nil
	}

	type plain APIError
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = APIError(p)
	return nil
}

// Sitemap is a navigable page tree the server exposes to its UIs.
type Sitemap struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Link     string `json:"link,omitempty"`
	Homepage struct {
		Link string `json:"link,omitempty"`
	} `json:"homepage,omitempty"`
}

// ServiceConfig is the key/value configuration of a single managed service.
type ServiceConfig map[string]interface{}
