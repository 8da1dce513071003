package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ClientType classifies the client of a case study
type ClientType string

const (
	ClientTypeResidential ClientType = "RES"
	ClientTypeCommercial  ClientType = "COM"
	ClientTypeIndustrial  ClientType = "IND"
)

// ClientTypes returns every client type in display order
func ClientTypes() []ClientType {
	return []ClientType{ClientTypeResidential, ClientTypeCommercial, ClientTypeIndustrial}
}

func (t ClientType) String() string {
	return string(t)
}

// Label maps the stored code to its display label. Unknown codes are returned as-is.
func (t ClientType) Label() string {
	switch t {
	case ClientTypeResidential:
		return "Residential"
	case ClientTypeCommercial:
		return "Commercial"
	case ClientTypeIndustrial:
		return "Industrial"
	}
	return string(t)
}

func (t ClientType) Valid() bool {
	switch t {
	case ClientTypeResidential, ClientTypeCommercial, ClientTypeIndustrial:
		return true
	}
	return false
}

func (t ClientType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *ClientType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = ClientType(str)
	return nil
}

func (t ClientType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *ClientType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = ClientType(v)
	case []byte:
		*t = ClientType(string(v))
	}
	return nil
}
