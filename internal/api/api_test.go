package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aquabill/statement-reconciler/internal/logging"
	"github.com/aquabill/statement-reconciler/internal/models"
)

func TestHealth(t *testing.T) {
	app := NewApp(logging.Nop())
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestExtractMissingFile(t *testing.T) {
	app := NewApp(logging.Nop())
	req := httptest.NewRequest(http.MethodPost, "/api/extract", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExtractWorkbook(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Mã khách hàng", "Số tiền(VND)", "Họ tên"},
		{"X100001", "250,000", "LE VAN C"},
		{"X100002", "125,000", "LE VAN D"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	wb, err := f.WriteToBuffer()
	require.NoError(t, err)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "payoo.xlsx")
	require.NoError(t, err)
	_, err = io.Copy(part, wb)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	app := NewApp(logging.Nop())
	req := httptest.NewRequest(http.MethodPost, "/api/extract", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Results []models.SheetResult `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Results, 1)

	res := payload.Results[0]
	assert.Equal(t, "payoo.xlsx", res.FileName)
	assert.Equal(t, "Payoo Wallet", res.Institution)
	assert.Equal(t, []string{"X100001", "X100002"}, res.Codes)
	assert.True(t, res.Selected)
}

func TestCompareEndpoint(t *testing.T) {
	body := bytes.NewBufferString(`{"listA":"X000001\nX000002","listB":"X000002\nX000003"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/compare", body)
	req.Header.Set("Content-Type", "application/json")

	app := NewApp(logging.Nop())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res models.ComparisonResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, []string{"X000001"}, res.InAOnly)
	assert.Equal(t, []string{"X000003"}, res.InBOnly)
	assert.Equal(t, []string{"X000002"}, res.Intersection)
}
