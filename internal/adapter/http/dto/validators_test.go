package dto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindCreateRecord(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req CreateRecordRequest
	return c.ShouldBindJSON(&req)
}

func TestCreateRecordRequest_PurposeValidation(t *testing.T) {
	tests := []struct {
		name    string
		purpose string
		wantErr bool
	}{
		{"acknowledgment", "ACKNOWLEDGMENT", false},
		{"approval", "APPROVAL", false},
		{"transfer", "TRANSFER", false},
		{"return", "RETURN", false},
		{"empty purpose allowed", "", false},
		{"unknown purpose rejected", "DISPOSAL", true},
		{"lowercase rejected", "acknowledgment", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(map[string]any{"asset_id": 42, "purpose": tt.purpose})
			err := bindCreateRecord(t, string(body))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateRecordRequest_RequiresAsset(t *testing.T) {
	assert.Error(t, bindCreateRecord(t, `{}`))
	assert.Error(t, bindCreateRecord(t, `{"asset_id": 0}`))
	assert.Error(t, bindCreateRecord(t, `{"asset_id": 42, "expires_in_days": 0}`))
	assert.NoError(t, bindCreateRecord(t, `{"asset_id": 42, "expires_in_days": 30}`))
}

func TestAcknowledgmentDTO_ToDomain(t *testing.T) {
	d := AcknowledgmentDTO{
		ID: 77, AssetID: 42,
		SerialNumber: "SN-1", IssuedTo: "Jamie Fox", Station: "HQ", Notes: "n",
	}

	ack := d.ToDomain()
	require.NotNil(t, ack)
	assert.Equal(t, int64(77), ack.ID)
	assert.Equal(t, int64(42), ack.AssetID)
	assert.Equal(t, "SN-1", ack.SerialNumber)
	assert.Equal(t, "Jamie Fox", ack.IssuedTo)
}
