package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVendorRecordValidate(t *testing.T) {
	valid := VendorRecord{
		VendorName:    "Acme Traders",
		ContactPerson: "Sunil",
		Phone:         "9876543210",
		Email:         "sales@acme.example",
	}

	t.Run("valid vendor passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("name is required", func(t *testing.T) {
		v := valid
		v.VendorName = "  "
		assert.Error(t, v.Validate())
	})

	t.Run("contact person is required", func(t *testing.T) {
		v := valid
		v.ContactPerson = ""
		assert.Error(t, v.Validate())
	})

	t.Run("phone must carry exactly ten digits", func(t *testing.T) {
		v := valid
		v.Phone = "12345"
		assert.Error(t, v.Validate())

		v.Phone = "98765-43210"
		assert.NoError(t, v.Validate(), "separators are ignored when counting digits")
	})

	t.Run("email is optional but must be well formed", func(t *testing.T) {
		v := valid
		v.Email = ""
		assert.NoError(t, v.Validate())

		v.Email = "not-an-email"
		assert.Error(t, v.Validate())
	})
}
