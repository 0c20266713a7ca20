package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Benefit struct {
	Benefit                string `db:"benefit"        json:"benefit"`
	InNetworkConditions    string `db:"in_network"     json:"innetwork"`
	OutOfNetworkConditions string `db:"out_of_network" json:"outofnetwork"`
	Limitations            string `db:"limitations"    json:"limitations"`
}

// Key is the serialized form of the benefit. Test cases generated from a benefit are stored under it.
func (b *Benefit) Key() string {
	data, _ := json.MarshalIndent(b, "", "  ")
	return string(data)
}

func (b *Benefit) Describe() string {
	return fmt.Sprintf("Benefit - %s, In-Network Conditions - %s, Out-of-Network Conditions - %s, Limitations - %s",
		b.Benefit, b.InNetworkConditions, b.OutOfNetworkConditions, b.Limitations)
}

func (b *Benefit) Validate() error {
	if strings.TrimSpace(b.Benefit) == "" {
		return fmt.Errorf("benefit is required")
	}

	return nil
}

// BenefitFromKey restores a benefit from the value returned by Key.
func BenefitFromKey(key string) (*Benefit, error) {
	var b Benefit
	if err := json.Unmarshal([]byte(key), &b); err != nil {
		return nil, fmt.Errorf("failed to decode benefit key: %w", err)
	}

	return &b, nil
}
