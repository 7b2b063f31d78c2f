package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// TruthyBool decodes the inconsistent active-flag representations found in
// staff records (true, 1, "true", "1") into a plain boolean.
type TruthyBool bool

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true
	default:
		return false
	}
}

func (b *TruthyBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("true")):
		*b = true
	case bytes.Equal(data, []byte("false")), bytes.Equal(data, []byte("null")):
		*b = false
	default:
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*b = TruthyBool(truthy(s))
			return nil
		}
		var n float64
		if err := json.Unmarshal(data, &n); err == nil {
			*b = TruthyBool(n != 0)
			return nil
		}
		return fmt.Errorf("cannot decode %q as truthy bool", string(data))
	}
	return nil
}

func (b *TruthyBool) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeBoolean:
		*b = TruthyBool(rv.Boolean())
	case bson.TypeInt32:
		*b = TruthyBool(rv.Int32() != 0)
	case bson.TypeInt64:
		*b = TruthyBool(rv.Int64() != 0)
	case bson.TypeDouble:
		*b = TruthyBool(rv.Double() != 0)
	case bson.TypeString:
		*b = TruthyBool(truthy(rv.StringValue()))
	case bson.TypeNull:
		*b = false
	default:
		return fmt.Errorf("cannot decode bson type %s as truthy bool", t)
	}
	return nil
}

// StaffMember is a member of the salon roster.
type StaffMember struct {
	ID            string     `bson:"id" json:"id"`
	FullName      string     `bson:"fullName" json:"fullName"`
	IsActive      TruthyBool `bson:"isActive" json:"isActive"`
	SkillsText    string     `bson:"skillsText" json:"skillsText"` // free text, e.g. "massage, skincare"
	RoleName      string     `bson:"roleName" json:"roleName"`
	ImageURL      string     `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	AverageRating float64    `bson:"averageRating" json:"averageRating"`
	TotalReviews  int        `bson:"totalReviews" json:"totalReviews"`
}

// ActiveResolved is the normalized active flag.
func (s StaffMember) ActiveResolved() bool {
	return bool(s.IsActive)
}
