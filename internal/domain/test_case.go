package domain

import (
	"fmt"
	"slices"
	"strings"
)

type TestCase struct {
	Name           string   `db:"name"             json:"name"`
	Description    string   `db:"description"      json:"description"`
	Type           string   `db:"type"             json:"type"`
	ExpectedResult string   `db:"expected_result"  json:"expectedResult"`
	ICDCodes       []string `db:"icd_codes"        json:"icdCodes"`
	ProcedureCodes []string `db:"procedure_codes"  json:"procedureCodes"`
	PlaceOfService []string `db:"place_of_service" json:"placeOfService"`
}

func (tc *TestCase) Validate() error {
	if strings.TrimSpace(tc.Name) == "" {
		return fmt.Errorf("name is required")
	}

	return nil
}

// TestCaseSet maps a benefit key to the test cases generated for that benefit.
type TestCaseSet map[string][]*TestCase

// Add appends to the cases already stored under key.
func (s TestCaseSet) Add(key string, cases ...*TestCase) {
	if len(cases) == 0 {
		return
	}

	s[key] = append(s[key], cases...)
}

func (s TestCaseSet) Len() int {
	var n int
	for _, cases := range s {
		n += len(cases)
	}

	return n
}

// Keys returns benefit keys in a stable order.
func (s TestCaseSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}
