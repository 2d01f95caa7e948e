package matcher

import (
	"testing"

	"github.com/zestie-cloud/pawmatch/internal/domain/dog"
	"github.com/zestie-cloud/pawmatch/internal/domain/pref"
)

func fptr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func mustDog(t *testing.T, p dog.Params) dog.Record {
	t.Helper()
	rec, err := dog.New(p)
	if err != nil {
		t.Fatalf("build dog %s: %v", p.ID, err)
	}
	return rec
}

func mustItem(t *testing.T, field, hardness string, value any, weight *float64, allowUnknown bool) pref.Item {
	t.Helper()
	it, err := pref.NewItem(field, hardness, value, weight, allowUnknown)
	if err != nil {
		t.Fatalf("build item %s: %v", field, err)
	}
	return it
}

func mustCond(t *testing.T, field string, value any) pref.Condition {
	t.Helper()
	c, err := pref.NewCondition(field, value)
	if err != nil {
		t.Fatalf("build condition %s: %v", field, err)
	}
	return c
}
