package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// RequestService is the service a visitor asks about on the lead form.
// It reuses the service type codes and adds "OTH".
type RequestService string

const RequestServiceOther RequestService = "OTH"

// RequestServices returns every choice offered on the lead form
func RequestServices() []RequestService {
	choices := make([]RequestService, 0, len(ServiceTypes())+1)
	for _, t := range ServiceTypes() {
		choices = append(choices, RequestService(t))
	}
	return append(choices, RequestServiceOther)
}

func (s RequestService) String() string {
	return string(s)
}

func (s RequestService) Label() string {
	if s == RequestServiceOther {
		return "Other"
	}
	return ServiceType(s).Label()
}

func (s RequestService) Valid() bool {
	return s == RequestServiceOther || ServiceType(s).Valid()
}

func (s RequestService) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *RequestService) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = RequestService(str)
	return nil
}

func (s RequestService) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *RequestService) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*s = RequestService(v)
	case []byte:
		*s = RequestService(string(v))
	}
	return nil
}
