package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AdminAction is the kind of staff action recorded in the audit log
type AdminAction string

const (
	AdminActionLogin  AdminAction = "LOGIN"
	AdminActionEdit   AdminAction = "EDIT"
	AdminActionDelete AdminAction = "DELETE"
	AdminActionConfig AdminAction = "CONFIG"
)

func (a AdminAction) String() string {
	return string(a)
}

func (a AdminAction) Label() string {
	switch a {
	case AdminActionLogin:
		return "Admin Login"
	case AdminActionEdit:
		return "Content Edit"
	case AdminActionDelete:
		return "Content Deletion"
	case AdminActionConfig:
		return "Configuration Change"
	}
	return string(a)
}

func (a AdminAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

func (a *AdminAction) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*a = AdminAction(str)
	return nil
}

func (a AdminAction) Value() (driver.Value, error) {
	return string(a), nil
}

func (a *AdminAction) Scan(value interface{}) error {
	if value == nil {
		*a = AdminActionEdit
		return nil
	}
	switch v := value.(type) {
	case string:
		*a = AdminAction(v)
	case []byte:
		*a = AdminAction(string(v))
	}
	return nil
}
