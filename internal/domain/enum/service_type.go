package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ServiceType is the short code identifying one of the signature service pillars
type ServiceType string

const (
	ServiceTypeAssessment     ServiceType = "SEA"
	ServiceTypeCustomPlan     ServiceType = "CSE"
	ServiceTypeESGRoadmap     ServiceType = "SER"
	ServiceTypeRemoteCoaching ServiceType = "REC"
	ServiceTypeInstallation   ServiceType = "IS"
)

var serviceTypeLabels = map[ServiceType]string{
	ServiceTypeAssessment:     "Smart Energy Assessment",
	ServiceTypeCustomPlan:     "Custom Solar & Efficiency Plan",
	ServiceTypeESGRoadmap:     "Sustainability & ESG Roadmap",
	ServiceTypeRemoteCoaching: "Remote Energy Coaching",
	ServiceTypeInstallation:   "Installation & Supervision",
}

// ServiceTypes returns every service type in display order
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceTypeAssessment,
		ServiceTypeCustomPlan,
		ServiceTypeESGRoadmap,
		ServiceTypeRemoteCoaching,
		ServiceTypeInstallation,
	}
}

func (t ServiceType) String() string {
	return string(t)
}

// Label returns the human readable name of the service type
func (t ServiceType) Label() string {
	if label, ok := serviceTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Valid reports whether t is one of the known service types
func (t ServiceType) Valid() bool {
	_, ok := serviceTypeLabels[t]
	return ok
}

func (t ServiceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *ServiceType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = ServiceType(str)
	return nil
}

func (t ServiceType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *ServiceType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = ServiceType(v)
	case []byte:
		*t = ServiceType(string(v))
	}
	return nil
}
