package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"neethelper/pkg/utils"
)

// UserID is an opaque premium user token. The file may hold it as a JSON
// string or a JSON number; both keep their literal text.
type UserID string

func (id *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case string(b) == "null":
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = UserID(s)
	case len(b) > 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')):
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*id = UserID(n.String())
	default:
		return fmt.Errorf("%w: user id %s", errMalformed, b)
	}
	return nil
}

// PremiumUsers is the list of users that paid, in file order.
type PremiumUsers []UserID

func (p PremiumUsers) Len() int { return len(p) }

// LoadPremiumUsers reads the JSON array at path. On failure it returns an
// empty, non-nil list together with a *LoadError so callers can fall back.
func LoadPremiumUsers(path string) (PremiumUsers, error) {
	f, err := os.Open(path)
	if err != nil {
		return PremiumUsers{}, openError(path, err)
	}
	users, err := utils.DecodeAndClose[PremiumUsers](f)
	if err != nil {
		return PremiumUsers{}, decodeError(path, err)
	}
	if users == nil {
		users = PremiumUsers{}
	}
	return users, nil
}
