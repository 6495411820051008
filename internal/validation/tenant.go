package validation

import (
	"encoding/json"

	"rentapi/internal/models"
	apperrors "rentapi/pkg/errors"
)

// ErrInvalidTenantID 租客ID无效或不存在
var ErrInvalidTenantID = apperrors.NotFound("Invalid tenant ID")

var (
	errTenantNameNull     = apperrors.BadRequest("Name cannot be null")
	errTenantEmailNull    = apperrors.BadRequest("Email cannot be null")
	errTenantPhoneNull    = apperrors.BadRequest("Phone cannot be null")
	errTenantPropertyNull = apperrors.BadRequest("Property ID cannot be null")
	errTenantNameEmpty    = apperrors.BadRequest("Name cannot be empty")
	errInvalidTenantName  = apperrors.BadRequest("Invalid name format")
	errInvalidEmail       = apperrors.BadRequest("Invalid email format")
	errInvalidPhone       = apperrors.BadRequest("Invalid phone number")
	errInvalidPropertyRef = apperrors.BadRequest("Invalid property ID format")
)

// tenantRules 字段顺序: name, email, phone, property_id
// property_id 只检查格式，不检查房产是否存在
func tenantRules(out *models.Tenant, missing [4]*apperrors.APIError) []rule {
	return []rule{
		{key: "name", missing: missing[0], null: errTenantNameNull, check: tenantName(&out.Name)},
		{key: "email", missing: missing[1], null: errTenantEmailNull, check: matching(&out.Email, emailPattern, errInvalidEmail)},
		{key: "phone", missing: missing[2], null: errTenantPhoneNull, check: matching(&out.Phone, digitsPattern, errInvalidPhone)},
		{key: "property_id", missing: missing[3], null: errTenantPropertyNull, check: text(&out.PropertyID, errInvalidPropertyRef, errInvalidPropertyRef)},
	}
}

// 名字不能为空，也不能是纯数字
func tenantName(dst *string) func(json.RawMessage) *apperrors.APIError {
	return func(raw json.RawMessage) *apperrors.APIError {
		s, ok := decodeString(raw)
		if !ok {
			return errInvalidTenantName
		}
		if s == "" {
			return errTenantNameEmpty
		}
		if digitsPattern.MatchString(s) {
			return errInvalidTenantName
		}
		*dst = s
		return nil
	}
}

// ValidateTenantCreate checks a tenant create payload.
func ValidateTenantCreate(p Payload) (*models.Tenant, *apperrors.APIError) {
	if p.Empty() {
		return nil, errEmptyPayload
	}

	var out models.Tenant
	rules := tenantRules(&out, [4]*apperrors.APIError{
		apperrors.BadRequest("Name is required"),
		apperrors.BadRequest("Email is required"),
		apperrors.BadRequest("Phone is required"),
		apperrors.BadRequest("Property ID is required"),
	})
	if err := run(p, rules); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateTenantUpdate checks an update for the tenant at path id. The payload
// id only has to be present and non-null; it is not compared with the path.
func ValidateTenantUpdate(id string, p Payload) (*models.Tenant, *apperrors.APIError) {
	if p.Empty() {
		return nil, errEmptyPayload
	}
	if !IsValidID(id) {
		return nil, ErrInvalidTenantID
	}

	// 业务字段先于 id 校验
	var out models.Tenant
	rules := append(tenantRules(&out, [4]*apperrors.APIError{
		apperrors.BadRequest("Name key is required"),
		apperrors.BadRequest("Missing email key"),
		apperrors.BadRequest("Missing phone key"),
		apperrors.BadRequest("Missing property_id key"),
	}), rule{
		key:     "id",
		missing: apperrors.BadRequest("ID is required"),
		null:    apperrors.BadRequest("Tenant ID cannot be null"),
	})
	if err := run(p, rules); err != nil {
		return nil, err
	}
	return &out, nil
}
