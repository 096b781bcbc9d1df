package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"requests/create-property/v1.json", "CreatePropertyRequest/1.0.0"},
		{"requests/register-user/v1.json", "RegisterUserRequest/1.0.0"},
		{"requests/login-user/v1.json", "LoginUserRequest/1.0.0"},
		{"requests/bogus.json", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, generateKeyFromPath(tt.path), tt.path)
	}
}

func TestValidateRequestRegister(t *testing.T) {
	valid := []byte(`{
		"email": "ana@example.com",
		"password": "long enough",
		"name": "Ana",
		"role": "buyer"
	}`)
	assert.NoError(t, ValidateRequest(RegisterUserRequest, CurrentVersion, valid))

	t.Run("missing required field", func(t *testing.T) {
		body := []byte(`{"email": "ana@example.com", "password": "long enough", "name": "Ana"}`)
		assert.Error(t, ValidateRequest(RegisterUserRequest, CurrentVersion, body))
	})

	t.Run("unknown role", func(t *testing.T) {
		body := []byte(`{"email": "ana@example.com", "password": "long enough", "name": "Ana", "role": "admin"}`)
		assert.Error(t, ValidateRequest(RegisterUserRequest, CurrentVersion, body))
	})

	t.Run("short password", func(t *testing.T) {
		body := []byte(`{"email": "ana@example.com", "password": "short", "name": "Ana", "role": "buyer"}`)
		assert.Error(t, ValidateRequest(RegisterUserRequest, CurrentVersion, body))
	})
}

func TestValidateRequestCreateProperty(t *testing.T) {
	valid := []byte(`{
		"title": "Cabin with fjord view",
		"description": "Quiet spot above the water",
		"property_type": "cabin",
		"price": 420000,
		"country": "Norway",
		"region": "Vestland",
		"city": "Balestrand"
	}`)
	assert.NoError(t, ValidateRequest(CreatePropertyRequest, CurrentVersion, valid))

	t.Run("unknown property type", func(t *testing.T) {
		body := []byte(`{
			"title": "Castle", "description": "Big", "property_type": "castle",
			"price": 1, "country": "X", "region": "Y", "city": "Z"
		}`)
		assert.Error(t, ValidateRequest(CreatePropertyRequest, CurrentVersion, body))
	})

	t.Run("negative price", func(t *testing.T) {
		body := []byte(`{
			"title": "Hole", "description": "In the ground", "property_type": "land",
			"price": -5, "country": "X", "region": "Y", "city": "Z"
		}`)
		assert.Error(t, ValidateRequest(CreatePropertyRequest, CurrentVersion, body))
	})

	t.Run("unexpected field", func(t *testing.T) {
		body := []byte(`{
			"title": "Cabin", "description": "Nice", "property_type": "cabin",
			"price": 1, "country": "X", "region": "Y", "city": "Z",
			"view_count": 9999
		}`)
		assert.Error(t, ValidateRequest(CreatePropertyRequest, CurrentVersion, body))
	})
}

func TestAllRequestContractsRegistered(t *testing.T) {
	contracts := []string{
		RegisterUserRequest,
		LoginUserRequest,
		CreatePropertyRequest,
		UpdatePropertyRequest,
		CreateInquiryRequest,
	}

	for _, name := range contracts {
		t.Run(name, func(t *testing.T) {
			err := ValidateRequest(name, CurrentVersion, []byte(`{}`))
			// An empty body fails schema validation, never schema lookup.
			require.Error(t, err)
			assert.NotContains(t, err.Error(), "not found")
		})
	}
}

func TestValidateRequestRejectsBadInputs(t *testing.T) {
	t.Run("unknown contract", func(t *testing.T) {
		assert.Error(t, ValidateRequest("NoSuchRequest", CurrentVersion, []byte(`{}`)))
	})

	t.Run("invalid json", func(t *testing.T) {
		assert.Error(t, ValidateRequest(LoginUserRequest, CurrentVersion, []byte(`{not json`)))
	})
}
