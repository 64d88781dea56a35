package response_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionResponse_TwoDecimals(t *testing.T) {
	tests := []struct {
		premium Premium
		want    string
	}{
		{24020, `{"PredictedPremium":24020.00}`},
		{28437.5, `{"PredictedPremium":28437.50}`},
		{15520.12, `{"PredictedPremium":15520.12}`},
	}
	for _, tt := range tests {
		out, err := json.Marshal(PredictionResponse{PredictedPremium: tt.premium})
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(out))
	}
}

func TestPredictionResponse_DecodesAsNumber(t *testing.T) {
	var decoded PredictionResponse
	require.NoError(t, json.Unmarshal([]byte(`{"PredictedPremium":24020.00}`), &decoded))
	assert.Equal(t, Premium(24020), decoded.PredictedPremium)
}
