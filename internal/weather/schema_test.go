// internal/weather/schema_test.go
package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "valid payload",
			payload: testPayload,
			wantErr: false,
		},
		{
			name:    "extra fields pass through",
			payload: `{"name":"Seattle","main":{"temp":55.0,"feels_like":54.0,"humidity":70,"pressure":1012},"weather":[{"description":"overcast clouds","icon":"04d"}],"wind":{"speed":4.1}}`,
			wantErr: false,
		},
		{
			name:    "missing main block",
			payload: `{"name":"Seattle","weather":[{"description":"mist"}]}`,
			wantErr: true,
		},
		{
			name:    "empty weather array",
			payload: `{"name":"Seattle","main":{"temp":55.0,"feels_like":54.0,"humidity":70},"weather":[]}`,
			wantErr: true,
		},
		{
			name:    "temperature as string",
			payload: `{"name":"Seattle","main":{"temp":"55","feels_like":54.0,"humidity":70},"weather":[{"description":"mist"}]}`,
			wantErr: true,
		},
		{
			name:    "API error body",
			payload: `{"cod":401,"message":"Invalid API key"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayload([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
