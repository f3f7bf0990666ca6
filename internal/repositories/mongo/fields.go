package mongo

import (
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// setDoc flattens a patch struct into the $set document of a partial
// update. Patch fields are pointers; nil means the caller did not provide
// the field, and it must not appear in the payload at all, otherwise the
// stored value would be overwritten with a zero. Fields tagged
// `bson:"-"` are skipped.
func setDoc(patch any) bson.M {
	v := reflect.ValueOf(patch)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return bson.M{}
		}
		v = v.Elem()
	}

	doc := bson.M{}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := bsonFieldName(f)
		if name == "" {
			continue
		}

		fv := v.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		doc[name] = fv.Interface()
	}
	return doc
}

func bsonFieldName(f reflect.StructField) string {
	tag, ok := f.Tag.Lookup("bson")
	if !ok {
		return strings.ToLower(f.Name)
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}
