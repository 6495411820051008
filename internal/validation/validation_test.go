package validation

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPayload(t *testing.T, body string) Payload {
	t.Helper()
	p, err := ParsePayload([]byte(body))
	require.Nil(t, err)
	return p
}

func TestParsePayload(t *testing.T) {
	p, err := ParsePayload(nil)
	assert.Nil(t, err)
	assert.True(t, p.Empty())

	p, err = ParsePayload([]byte("  {}  "))
	assert.Nil(t, err)
	assert.True(t, p.Empty())

	for _, body := range []string{"[]", "42", `"x"`, "null", "{", `{"name":}`} {
		_, err := ParsePayload([]byte(body))
		require.NotNil(t, err, body)
		assert.Equal(t, http.StatusBadRequest, err.Status)
		assert.Equal(t, "Invalid request body", err.Message)
	}
}

func TestPayloadDistinguishesAbsentAndNull(t *testing.T) {
	p := mustPayload(t, `{"a": null, "b": "x"}`)

	_, state := p.lookup("a")
	assert.Equal(t, fieldNull, state)
	_, state = p.lookup("b")
	assert.Equal(t, fieldPresent, state)
	_, state = p.lookup("c")
	assert.Equal(t, fieldAbsent, state)
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("6b1f1c1e-1d7a-4e53-9c55-0a1c6f1b2d3e"))
	assert.True(t, IsValidID("invalid-id"))
	for _, id := range []string{"", "  ", "null", "undefined"} {
		assert.False(t, IsValidID(id), id)
	}
}

type errCase struct {
	name    string
	body    string
	status  int
	message string
	key     string
}

func TestValidatePropertyCreate(t *testing.T) {
	valid := `{"name":"p1","address":"a1","rent":1200,"is_available":true}`
	p, err := ValidatePropertyCreate(mustPayload(t, valid))
	require.Nil(t, err)
	assert.Equal(t, "p1", p.Name)
	assert.Equal(t, "a1", p.Address)
	assert.Equal(t, 1200.0, p.Rent)
	assert.True(t, p.IsAvailable)
	assert.Empty(t, p.ID)

	cases := []errCase{
		{"empty payload", `{}`, 400, "Empty payload is not allowed", "error"},
		{"name missing", `{"address":"a","rent":1,"is_available":true}`, 400, "name key is missed", "message"},
		{"address missing", `{"name":"n","rent":1,"is_available":true}`, 400, "address key is missed", "message"},
		{"rent missing", `{"name":"n","address":"a","is_available":true}`, 400, "rent key is missed", "message"},
		{"is_available missing", `{"name":"n","address":"a","rent":1}`, 400, "is_available key is missed", "message"},
		{"name null", `{"name":null,"address":"a","rent":1,"is_available":true}`, 400, "Name cannot be null", "error"},
		{"address null", `{"name":"n","address":null,"rent":1,"is_available":true}`, 400, "Address cannot be null", "error"},
		{"rent null", `{"name":"n","address":"a","rent":null,"is_available":true}`, 400, "Rent cannot be null", "error"},
		{"is_available null", `{"name":"n","address":"a","rent":1,"is_available":null}`, 400, "Availability status cannot be null", "error"},
		{"name empty", `{"name":"","address":"a","rent":1,"is_available":true}`, 400, "Invalid name provided", "error"},
		{"name number", `{"name":5,"address":"a","rent":1,"is_available":true}`, 400, "Invalid name provided", "error"},
		{"address empty", `{"name":"n","address":"","rent":1,"is_available":true}`, 400, "Invalid address provided", "error"},
		{"rent zero", `{"name":"p1","address":"a1","rent":0,"is_available":true}`, 400, "Invalid rent provided", "error"},
		{"rent negative", `{"name":"n","address":"a","rent":-5,"is_available":true}`, 400, "Invalid rent provided", "error"},
		{"rent string", `{"name":"n","address":"a","rent":"1200","is_available":true}`, 400, "Invalid rent provided", "error"},
		{"is_available yes", `{"name":"n","address":"a","rent":1,"is_available":"yes"}`, 400, "Invalid availability status provided", "error"},
		{"is_available string false", `{"name":"n","address":"a","rent":1,"is_available":"false"}`, 400, "Invalid availability status provided", "error"},
		{"first failing field wins", `{"rent":-1,"is_available":"yes"}`, 400, "name key is missed", "message"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ValidatePropertyCreate(mustPayload(t, tc.body))
			assert.Nil(t, p)
			require.NotNil(t, err)
			assert.Equal(t, tc.status, err.Status)
			assert.Equal(t, tc.message, err.Message)
			assert.Equal(t, tc.key, err.BodyKey())
		})
	}
}

func TestValidatePropertyCreateAcceptsFalseAvailability(t *testing.T) {
	p, err := ValidatePropertyCreate(mustPayload(t, `{"name":"n","address":"a","rent":0.01,"is_available":false}`))
	require.Nil(t, err)
	assert.False(t, p.IsAvailable)
	assert.Equal(t, 0.01, p.Rent)
}

func TestValidatePropertyUpdate(t *testing.T) {
	const id = "prop-1"
	p, err := ValidatePropertyUpdate(id, mustPayload(t,
		`{"id":"prop-1","name":"n","address":"a","rent":1500,"is_available":false}`))
	require.Nil(t, err)
	assert.Equal(t, "n", p.Name)
	assert.Equal(t, 1500.0, p.Rent)

	cases := []struct {
		errCase
		pathID string
	}{
		{errCase{"empty payload", `{}`, 400, "Empty payload is not allowed", "error"}, id},
		{errCase{"empty payload beats invalid id", `{}`, 400, "Empty payload is not allowed", "error"}, ""},
		{errCase{"empty path id", `{"name":null}`, 404, "Invalid property ID", "error"}, ""},
		{errCase{"null path id", `{"id":"x","name":"n","address":"a","rent":1,"is_available":true}`, 404, "Invalid property ID", "error"}, "null"},
		{errCase{"undefined path id", `{"id":"x","name":"n","address":"a","rent":1,"is_available":true}`, 404, "Invalid property ID", "error"}, "undefined"},
		{errCase{"id missing", `{"name":"n","address":"a","rent":1,"is_available":true}`, 400, "Id key is missing", "error"}, id},
		{errCase{"id null", `{"id":null,"name":"n","address":"a","rent":1,"is_available":true}`, 400, "Id cannot be null", "error"}, id},
		{errCase{"name missing", `{"id":"x","address":"a","rent":1,"is_available":true}`, 400, "Name key is missing", "error"}, id},
		{errCase{"address missing", `{"id":"x","name":"n","rent":1,"is_available":true}`, 400, "Address key is missing", "error"}, id},
		{errCase{"rent missing", `{"id":"x","name":"n","address":"a","is_available":true}`, 400, "Rent key is missing", "error"}, id},
		{errCase{"is_available missing", `{"id":"x","name":"n","address":"a","rent":1}`, 400, "is_available key is missing", "error"}, id},
		{errCase{"name empty", `{"id":"x","name":"","address":"a","rent":1,"is_available":true}`, 400, "Name cannot be empty", "error"}, id},
		{errCase{"address empty", `{"id":"x","name":"n","address":"","rent":1,"is_available":true}`, 400, "Address cannot be empty", "error"}, id},
		{errCase{"name null", `{"id":"x","name":null,"address":"a","rent":1,"is_available":true}`, 400, "Name cannot be null", "error"}, id},
		{errCase{"address null", `{"id":"x","name":"n","address":null,"rent":1,"is_available":true}`, 400, "Address cannot be null", "error"}, id},
		{errCase{"rent null", `{"id":"x","name":"n","address":"a","rent":null,"is_available":true}`, 400, "Rent cannot be null", "error"}, id},
		{errCase{"is_available null", `{"id":"x","name":"n","address":"a","rent":1,"is_available":null}`, 400, "is_available cannot be null", "error"}, id},
		{errCase{"rent zero", `{"id":"x","name":"n","address":"a","rent":0,"is_available":true}`, 400, "Rent cannot be zero", "error"}, id},
		{errCase{"rent negative", `{"id":"x","name":"n","address":"a","rent":-10,"is_available":true}`, 400, "Rent cannot be negative", "error"}, id},
		{errCase{"rent string", `{"id":"x","name":"n","address":"a","rent":"ten","is_available":true}`, 400, "Invalid rent provided", "error"}, id},
		{errCase{"name wrong type", `{"id":"x","name":true,"address":"a","rent":1,"is_available":true}`, 400, "Invalid name provided", "error"}, id},
		{errCase{"is_available invalid", `{"id":"x","name":"n","address":"a","rent":1,"is_available":"yes"}`, 400, "Invalid availability status provided", "error"}, id},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ValidatePropertyUpdate(tc.pathID, mustPayload(t, tc.body))
			assert.Nil(t, p)
			require.NotNil(t, err)
			assert.Equal(t, tc.status, err.Status)
			assert.Equal(t, tc.message, err.Message)
			assert.Equal(t, tc.key, err.BodyKey())
		})
	}
}

func TestValidateTenantCreate(t *testing.T) {
	tn, err := ValidateTenantCreate(mustPayload(t,
		`{"name":"John Doe","email":"john.doe@example.com","phone":"1234567890","property_id":"anything"}`))
	require.Nil(t, err)
	assert.Equal(t, "John Doe", tn.Name)
	assert.Equal(t, "john.doe@example.com", tn.Email)
	assert.Equal(t, "1234567890", tn.Phone)
	assert.Equal(t, "anything", tn.PropertyID)

	cases := []errCase{
		{"empty payload", `{}`, 400, "Empty payload is not allowed", "error"},
		{"name missing", `{"email":"a@b.co","phone":"1","property_id":"p"}`, 400, "Name is required", "error"},
		{"name and email missing", `{"phone":"1","property_id":"p"}`, 400, "Name is required", "error"},
		{"email missing", `{"name":"J","phone":"1","property_id":"p"}`, 400, "Email is required", "error"},
		{"phone missing", `{"name":"J","email":"a@b.co","property_id":"p"}`, 400, "Phone is required", "error"},
		{"property_id missing", `{"name":"J","email":"a@b.co","phone":"1"}`, 400, "Property ID is required", "error"},
		{"name null", `{"name":null,"email":"a@b.co","phone":"1","property_id":"p"}`, 400, "Name cannot be null", "error"},
		{"email null", `{"name":"J","email":null,"phone":"1","property_id":"p"}`, 400, "Email cannot be null", "error"},
		{"phone null", `{"name":"J","email":"a@b.co","phone":null,"property_id":"p"}`, 400, "Phone cannot be null", "error"},
		{"property_id null", `{"name":"J","email":"a@b.co","phone":"1","property_id":null}`, 400, "Property ID cannot be null", "error"},
		{"name empty", `{"name":"","email":"a@b.co","phone":"1","property_id":"p"}`, 400, "Name cannot be empty", "error"},
		{"name numeric", `{"name":"12345","email":"a@b.co","phone":"1","property_id":"p"}`, 400, "Invalid name format", "error"},
		{"name not string", `{"name":12345,"email":"a@b.co","phone":"1","property_id":"p"}`, 400, "Invalid name format", "error"},
		{"email without at", `{"name":"John","email":"x","phone":"123","property_id":"p"}`, 400, "Invalid email format", "error"},
		{"email without dot", `{"name":"J","email":"a@b","phone":"1","property_id":"p"}`, 400, "Invalid email format", "error"},
		{"email with space", `{"name":"J","email":"a b@c.co","phone":"1","property_id":"p"}`, 400, "Invalid email format", "error"},
		{"email empty", `{"name":"J","email":"","phone":"1","property_id":"p"}`, 400, "Invalid email format", "error"},
		{"phone letters", `{"name":"J","email":"a@b.co","phone":"12ab","property_id":"p"}`, 400, "Invalid phone number", "error"},
		{"phone symbols", `{"name":"J","email":"a@b.co","phone":"+1-555","property_id":"p"}`, 400, "Invalid phone number", "error"},
		{"phone number type", `{"name":"J","email":"a@b.co","phone":1234,"property_id":"p"}`, 400, "Invalid phone number", "error"},
		{"property_id number", `{"name":"J","email":"a@b.co","phone":"1","property_id":7}`, 400, "Invalid property ID format", "error"},
		{"property_id empty", `{"name":"J","email":"a@b.co","phone":"1","property_id":""}`, 400, "Invalid property ID format", "error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tn, err := ValidateTenantCreate(mustPayload(t, tc.body))
			assert.Nil(t, tn)
			require.NotNil(t, err)
			assert.Equal(t, tc.status, err.Status)
			assert.Equal(t, tc.message, err.Message)
			assert.Equal(t, tc.key, err.BodyKey())
		})
	}
}

func TestValidateTenantUpdate(t *testing.T) {
	const id = "tenant-1"
	tn, err := ValidateTenantUpdate(id, mustPayload(t,
		`{"id":"some-other-id","name":"Edited John Doe","email":"john.doe22@example.com","phone":"3426326734","property_id":"updated-id"}`))
	require.Nil(t, err)
	assert.Equal(t, "Edited John Doe", tn.Name)
	assert.Empty(t, tn.ID)

	cases := []struct {
		errCase
		pathID string
	}{
		{errCase{"empty payload", `{}`, 400, "Empty payload is not allowed", "error"}, id},
		{errCase{"null path id", `{"name":"J"}`, 404, "Invalid tenant ID", "error"}, "null"},
		{errCase{"id missing", `{"name":"J","email":"a@b.co","phone":"1","property_id":"p"}`, 400, "ID is required", "error"}, id},
		{errCase{"id null", `{"id":null,"name":"J","email":"a@b.co","phone":"1","property_id":"p"}`, 400, "Tenant ID cannot be null", "error"}, id},
		{errCase{"name missing", `{"id":"x","email":"a@b.co","phone":"1","property_id":"p"}`, 400, "Name key is required", "error"}, id},
		{errCase{"email missing", `{"id":"x","name":"J","phone":"1","property_id":"p"}`, 400, "Missing email key", "error"}, id},
		{errCase{"phone missing", `{"id":"x","name":"J","email":"a@b.co","property_id":"p"}`, 400, "Missing phone key", "error"}, id},
		{errCase{"property_id missing", `{"id":"x","name":"J","email":"a@b.co","phone":"1"}`, 400, "Missing property_id key", "error"}, id},
		{errCase{"name empty", `{"id":"x","name":"","email":"a@b.co","phone":"1","property_id":"p"}`, 400, "Name cannot be empty", "error"}, id},
		{errCase{"email empty", `{"id":"x","name":"J","email":"","phone":"1","property_id":"p"}`, 400, "Invalid email format", "error"}, id},
		{errCase{"phone empty", `{"id":"x","name":"J","email":"a@b.co","phone":"","property_id":"p"}`, 400, "Invalid phone number", "error"}, id},
		{errCase{"name null", `{"id":"x","name":null,"email":"a@b.co","phone":"1","property_id":"p"}`, 400, "Name cannot be null", "error"}, id},
		{errCase{"email null", `{"id":"x","name":"J","email":null,"phone":"1","property_id":"p"}`, 400, "Email cannot be null", "error"}, id},
		{errCase{"phone null", `{"id":"x","name":"J","email":"a@b.co","phone":null,"property_id":"p"}`, 400, "Phone cannot be null", "error"}, id},
		{errCase{"property_id null", `{"id":"x","name":"J","email":"a@b.co","phone":"1","property_id":null}`, 400, "Property ID cannot be null", "error"}, id},
		{errCase{"field errors before missing id", `{"name":"","email":"john.doe22@example.com","phone":"3426326734","property_id":"updated-id"}`, 400, "Name cannot be empty", "error"}, id},
		{errCase{"missing key before missing id", `{"name":"J","email":"a@b.co","phone":"1"}`, 400, "Missing property_id key", "error"}, id},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tn, err := ValidateTenantUpdate(tc.pathID, mustPayload(t, tc.body))
			assert.Nil(t, tn)
			require.NotNil(t, err)
			assert.Equal(t, tc.status, err.Status)
			assert.Equal(t, tc.message, err.Message)
			assert.Equal(t, tc.key, err.BodyKey())
		})
	}
}
