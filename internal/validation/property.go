package validation

import (
	"rentapi/internal/models"
	apperrors "rentapi/pkg/errors"
)

// 房产相关的 404 错误
var (
	ErrInvalidPropertyID = apperrors.NotFound("Invalid property ID")
	ErrPropertyNotExist  = apperrors.NotFound("Property with the specified ID does not exist")
)

var (
	errInvalidPropertyName    = apperrors.BadRequest("Invalid name provided")
	errInvalidPropertyAddress = apperrors.BadRequest("Invalid address provided")
	errInvalidRent            = apperrors.BadRequest("Invalid rent provided")
	errInvalidAvailability    = apperrors.BadRequest("Invalid availability status provided")
)

// ValidatePropertyCreate checks a create payload in the order
// name, address, rent, is_available.
// Empty strings and non-positive rent get the generic "Invalid ... provided"
// messages; missing keys are reported under the "message" body key.
func ValidatePropertyCreate(p Payload) (*models.Property, *apperrors.APIError) {
	if p.Empty() {
		return nil, errEmptyPayload
	}

	var out models.Property
	rules := []rule{
		{
			key:     "name",
			missing: apperrors.MissingKey("name key is missed"),
			null:    apperrors.BadRequest("Name cannot be null"),
			check:   text(&out.Name, errInvalidPropertyName, errInvalidPropertyName),
		},
		{
			key:     "address",
			missing: apperrors.MissingKey("address key is missed"),
			null:    apperrors.BadRequest("Address cannot be null"),
			check:   text(&out.Address, errInvalidPropertyAddress, errInvalidPropertyAddress),
		},
		{
			key:     "rent",
			missing: apperrors.MissingKey("rent key is missed"),
			null:    apperrors.BadRequest("Rent cannot be null"),
			check:   positive(&out.Rent, errInvalidRent, errInvalidRent, errInvalidRent),
		},
		{
			key:     "is_available",
			missing: apperrors.MissingKey("is_available key is missed"),
			null:    apperrors.BadRequest("Availability status cannot be null"),
			check:   boolean(&out.IsAvailable, errInvalidAvailability),
		},
	}
	if err := run(p, rules); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidatePropertyUpdate checks an update for the property at path id.
//
// An empty payload is rejected first, then a structurally invalid id, then the
// fields in the order id, name, address, rent, is_available. Whether id
// exists is left to the caller. Unlike create, zero and negative rent are
// reported separately.
func ValidatePropertyUpdate(id string, p Payload) (*models.Property, *apperrors.APIError) {
	if p.Empty() {
		return nil, errEmptyPayload
	}
	if !IsValidID(id) {
		return nil, ErrInvalidPropertyID
	}

	var out models.Property
	rules := []rule{
		{
			key:     "id",
			missing: apperrors.BadRequest("Id key is missing"),
			null:    apperrors.BadRequest("Id cannot be null"),
		},
		{
			key:     "name",
			missing: apperrors.BadRequest("Name key is missing"),
			null:    apperrors.BadRequest("Name cannot be null"),
			check:   text(&out.Name, errInvalidPropertyName, apperrors.BadRequest("Name cannot be empty")),
		},
		{
			key:     "address",
			missing: apperrors.BadRequest("Address key is missing"),
			null:    apperrors.BadRequest("Address cannot be null"),
			check:   text(&out.Address, errInvalidPropertyAddress, apperrors.BadRequest("Address cannot be empty")),
		},
		{
			key:     "rent",
			missing: apperrors.BadRequest("Rent key is missing"),
			null:    apperrors.BadRequest("Rent cannot be null"),
			check: positive(&out.Rent, errInvalidRent,
				apperrors.BadRequest("Rent cannot be zero"),
				apperrors.BadRequest("Rent cannot be negative")),
		},
		{
			key:     "is_available",
			missing: apperrors.BadRequest("is_available key is missing"),
			null:    apperrors.BadRequest("is_available cannot be null"),
			check:   boolean(&out.IsAvailable, errInvalidAvailability),
		},
	}
	if err := run(p, rules); err != nil {
		return nil, err
	}
	return &out, nil
}
