package exercise

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newThresholdsRouter(db *fakeThresholdsDB) *mux.Router {
	handler := NewHandler(NewRepo(db))
	r := mux.NewRouter()
	handler.SetupRoutes(r.PathPrefix("/exercise").Subrouter())
	return r
}

func TestThresholdsHandler_Get_Defaults(t *testing.T) {
	router := newThresholdsRouter(&fakeThresholdsDB{row: &fakeRow{err: pgx.ErrNoRows}})

	req, err := http.NewRequest("GET", "/exercise/strength/thresholds", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var thresholds Thresholds
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &thresholds))
	assert.Equal(t, DefaultThresholds(), thresholds)
}

func TestThresholdsHandler_Get_InvalidType(t *testing.T) {
	router := newThresholdsRouter(&fakeThresholdsDB{})

	req, err := http.NewRequest("GET", "/exercise/pilates/thresholds", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestThresholdsHandler_Set(t *testing.T) {
	db := &fakeThresholdsDB{}
	router := newThresholdsRouter(db)

	thresholds := DefaultThresholds()
	thresholds.HoldKneeMaxAngle = 115
	thresholdsJson, err := json.Marshal(thresholds)
	require.NoError(t, err)

	req, err := http.NewRequest("PUT", "/exercise/yoga/thresholds", bytes.NewReader(thresholdsJson))
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "updated:yoga", rr.Body.String())
	assert.Equal(t, 1, db.execCounter)
}

func TestThresholdsHandler_Set_InvalidThresholds(t *testing.T) {
	db := &fakeThresholdsDB{}
	router := newThresholdsRouter(db)

	thresholds := DefaultThresholds()
	thresholds.CurlFlexedAngle = 170 // above extended, would wedge the curl machine
	thresholdsJson, err := json.Marshal(thresholds)
	require.NoError(t, err)

	req, err := http.NewRequest("PUT", "/exercise/strength/thresholds", bytes.NewReader(thresholdsJson))
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, db.execCounter)
}
