package types

// User represents a single contact record in the directory.
// All fields other than ID are overwritten wholesale on update.
type User struct {
	// ID is the unique identifier of the record, assigned by the store.
	ID int `json:"id" db:"id"`

	// Name is the contact's display name. Required, never empty once persisted.
	Name string `json:"name" db:"name"`

	// Email is the contact's email address. Required and unique across
	// all records.
	Email string `json:"email" db:"email"`

	// Phone is the contact's phone number.
	Phone string `json:"phone" db:"phone"`

	// Company is the contact's company or organization.
	Company string `json:"company" db:"company"`

	// Street is the street portion of the contact's address.
	Street string `json:"street" db:"street"`

	// City is the city portion of the contact's address.
	City string `json:"city" db:"city"`

	// Zipcode is the postal code portion of the contact's address.
	Zipcode string `json:"zipcode" db:"zipcode"`

	// Lat is the latitude of the contact's address, stored as text.
	Lat string `json:"lat" db:"lat"`

	// Lng is the longitude of the contact's address, stored as text.
	Lng string `json:"lng" db:"lng"`
}
