package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Lang selects which rendering of a Bilingual value is served.
type Lang string

const (
	LangES Lang = "es"
	LangEN Lang = "en"
)

// ParseLang normalizes a language query parameter. Anything that is not
// English falls back to Spanish, the site's primary language.
func ParseLang(s string) Lang {
	if s == string(LangEN) {
		return LangEN
	}
	return LangES
}

// Bilingual carries the Spanish and English renderings of one piece of
// content. Early documents stored some of these fields as plain strings;
// those are flattened into both languages at the decode boundary, so the
// rest of the code never sees the legacy shape.
type Bilingual struct {
	ES string `bson:"es" json:"es"`
	EN string `bson:"en" json:"en"`
}

// FromString builds a Bilingual value from a legacy language-independent
// string.
func FromString(s string) Bilingual {
	return Bilingual{ES: s, EN: s}
}

// Resolve returns the rendering for lang, falling back to Spanish, then
// English, then the empty string.
func (b Bilingual) Resolve(lang Lang) string {
	if lang == LangEN && b.EN != "" {
		return b.EN
	}
	if lang == LangES && b.ES != "" {
		return b.ES
	}
	if b.ES != "" {
		return b.ES
	}
	return b.EN
}

func (b Bilingual) IsZero() bool {
	return b.ES == "" && b.EN == ""
}

func (b *Bilingual) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = FromString(s)
		return nil
	}
	if string(data) == "null" {
		*b = Bilingual{}
		return nil
	}
	var aux struct {
		ES string `json:"es"`
		EN string `json:"en"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	b.ES, b.EN = aux.ES, aux.EN
	return nil
}

func (b *Bilingual) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeString:
		s, _, ok := bsoncore.ReadString(data)
		if !ok {
			return fmt.Errorf("bilingual: malformed string value")
		}
		*b = FromString(s)
		return nil
	case bson.TypeEmbeddedDocument:
		var aux struct {
			ES string `bson:"es"`
			EN string `bson:"en"`
		}
		if err := bson.Unmarshal(data, &aux); err != nil {
			return err
		}
		b.ES, b.EN = aux.ES, aux.EN
		return nil
	case bson.TypeNull:
		*b = Bilingual{}
		return nil
	}
	return fmt.Errorf("bilingual: unsupported BSON type %s", t)
}
