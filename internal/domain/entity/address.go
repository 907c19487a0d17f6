// Package entity contains the core business objects of the project.
package entity

import "encoding/json"

// Address is an immutable value object attached to members and deliveries.
// Two addresses are equal when all of their parts are equal.
type Address struct {
	city    string
	street  string
	zipcode string
}

// NewAddress builds an Address from its parts.
func NewAddress(city, street, zipcode string) Address {
	return Address{
		city:    city,
		street:  street,
		zipcode: zipcode,
	}
}

// City returns the city part of the address.
func (a Address) City() string {
	return a.city
}

// Street returns the street part of the address.
func (a Address) Street() string {
	return a.street
}

// Zipcode returns the postal code of the address.
func (a Address) Zipcode() string {
	return a.zipcode
}

// Equal reports whether both addresses hold the same values.
func (a Address) Equal(other Address) bool {
	return a == other
}

// IsZero reports whether no part of the address was supplied.
func (a Address) IsZero() bool {
	return a == Address{}
}

type addressJSON struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

// MarshalJSON renders the address as a plain JSON object.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{City: a.city, Street: a.street, Zipcode: a.zipcode})
}

// UnmarshalJSON reads the address from a plain JSON object.
func (a *Address) UnmarshalJSON(data []byte) error {
	var raw addressJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = NewAddress(raw.City, raw.Street, raw.Zipcode)

	return nil
}
