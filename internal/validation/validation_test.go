package validation_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvandy/contacts-backend/internal/apperr"
	"github.com/arvandy/contacts-backend/internal/types"
	"github.com/arvandy/contacts-backend/internal/validation"
)

func bindJSON(t *testing.T, body string, obj interface{}) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(obj)
}

func fieldMessages(ae *apperr.Error) map[string]string {
	out := make(map[string]string, len(ae.Fields))
	for _, fe := range ae.Fields {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestAsAppErrorFieldDetail(t *testing.T) {
	var req types.RegisterUserRequest
	err := bindJSON(t, `{"username":"ab","password":"short","name":""}`, &req)
	require.Error(t, err)

	ae := validation.AsAppError(err)
	assert.Equal(t, apperr.KindValidation, ae.Kind)

	fields := fieldMessages(ae)
	assert.Equal(t, "must be at least 3 characters", fields["username"])
	assert.Equal(t, "must be at least 8 characters", fields["password"])
	assert.Equal(t, "is required", fields["name"])
}

func TestAsAppErrorUsesJSONFieldNames(t *testing.T) {
	var req types.CreateContactRequest
	err := bindJSON(t, `{"email":"not-an-email"}`, &req)
	require.Error(t, err)

	fields := fieldMessages(validation.AsAppError(err))
	assert.Contains(t, fields, "first_name")
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.NotContains(t, fields, "FirstName")
}

func TestAsAppErrorMalformedJSON(t *testing.T) {
	var req types.RegisterUserRequest
	err := bindJSON(t, `{"username":`, &req)
	require.Error(t, err)

	ae := validation.AsAppError(err)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	assert.Empty(t, ae.Fields)
	assert.Equal(t, "invalid request body", ae.Message)
}

func TestParseID(t *testing.T) {
	cases := []struct {
		raw    string
		wantID int64
		wantOK bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			id, err := validation.ParseID("contactId", tc.raw)
			if tc.wantOK {
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, id)
				return
			}
			require.Error(t, err)
			var ae *apperr.Error
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, apperr.KindValidation, ae.Kind)
			require.Len(t, ae.Fields, 1)
			assert.Equal(t, "contactId", ae.Fields[0].Field)
		})
	}
}
