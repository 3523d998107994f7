package iterpro

import (
	"bytes"
	"encoding/json"
)

// flexString absorbs fields iterpro serves as either a JSON string or a
// bare number, such as jersey.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type playerPayload struct {
	ID          string     `json:"_id"`
	DisplayName string     `json:"displayName"`
	Name        string     `json:"name"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Position    string     `json:"position"`
	Nationality string     `json:"nationality"`
	TeamID      string     `json:"teamId"`
	Jersey      flexString `json:"jersey"`
}

// rosterEnvelope is the wrapped form the players endpoint sometimes
// returns; the bare-array form decodes directly into []playerPayload.
type rosterEnvelope struct {
	Users      []playerPayload `json:"users"`
	TotalUsers int             `json:"total_users"`
}

type teamPayload struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	BadgeURL string `json:"badgeUrl"`
	LogoURL  string `json:"logoUrl"`
	CrestURL string `json:"crestUrl"`
}
