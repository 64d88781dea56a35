package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"premiumcalc/internal/api/controllers"
	"premiumcalc/internal/model"
	"premiumcalc/internal/models/db_models"
	"premiumcalc/internal/services"
)

const exampleBody = `{"Age":35,"Diabetes":0,"BloodPressureProblems":1,"AnyTransplants":0,
"AnyChronicDiseases":0,"Height":170,"Weight":70,"KnownAllergies":0,
"HistoryOfCancerInFamily":1,"NumberOfMajorSurgeries":1,"BMI":24.2}`

type failingSink struct{}

func (failingSink) Name() string { return "broken" }

func (failingSink) Append(context.Context, db_models.PremiumRecord) error {
	return errors.New("sheet unavailable")
}

func newTestRouter(t *testing.T, sink services.RecordSink) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m, err := model.Load("../../../models/premium_model.json")
	require.NoError(t, err)

	premiumSvc := services.NewPremiumService(m)
	intakeSvc := services.NewIntakeService(premiumSvc, sink, time.Second, zap.NewNop())

	return New(zap.NewNop(), Controllers{
		Premium: controllers.NewPremiumController(premiumSvc, intakeSvc),
		Records: controllers.NewRecordsController(services.NewRecordHistoryService(nil)),
		Health:  controllers.NewHealthController(),
	})
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestPredict_Example(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/predict", exampleBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"PredictedPremium":24020.00}`, w.Body.String())

	again := do(r, http.MethodPost, "/predict", exampleBody)
	assert.Equal(t, w.Body.String(), again.Body.String())
}

func TestPredict_MissingField(t *testing.T) {
	r := newTestRouter(t, nil)
	body := strings.Replace(exampleBody, `"BMI":24.2`, `"BMI":null`, 1)

	w := do(r, http.MethodPost, "/predict", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "BMI")
}

func TestPredict_OutOfRange(t *testing.T) {
	r := newTestRouter(t, nil)
	body := strings.Replace(exampleBody, `"Age":35`, `"Age":101`, 1)

	w := do(r, http.MethodPost, "/predict", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "Age must be <= 100")
}

func TestPredict_MalformedJSON(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/predict", `{"Age":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEstimate_AppendsOneRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "premium_records.xlsx")
	sink, err := services.NewWorkbookRecordSink(path, "Premiums")
	require.NoError(t, err)
	r := newTestRouter(t, sink)

	w := do(r, http.MethodPost, "/premiums/estimate", exampleBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"PredictedPremium":24020.00}`, w.Body.String())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Premiums")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"35", "24.2", "70", "170", "0", "1", "0", "0", "0", "1", "1", "24020"}, rows[1])
}

func TestEstimate_SinkFailureSameResponse(t *testing.T) {
	r := newTestRouter(t, services.NewMultiSink(failingSink{}))

	estimate := do(r, http.MethodPost, "/premiums/estimate", exampleBody)
	predict := do(r, http.MethodPost, "/predict", exampleBody)

	require.Equal(t, http.StatusOK, estimate.Code)
	assert.Equal(t, predict.Body.String(), estimate.Body.String())
}

func TestRecords_NotConfigured(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/premiums/records?page=1&pageSize=20", "")
	assert.Equal(t, http.StatusNotImplemented, w.Code)

	w = do(r, http.MethodGet, "/premiums/records?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOperationalEndpoints(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	w = do(r, http.MethodGet, "/model", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.0.0"`)
	assert.Contains(t, w.Body.String(), `"feature_names":["Age","Diabetes"`)

	do(r, http.MethodPost, "/predict", exampleBody)
	w = do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "premium_predictions_total")
}
