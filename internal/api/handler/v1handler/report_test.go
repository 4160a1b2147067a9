package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bangsafe/internal/api/handler/v1handler"
	"bangsafe/internal/api/specs/v1specs"
	"bangsafe/pkg/domain"
	"bangsafe/pkg/serrors"
)

func TestReportToV1Specs(t *testing.T) {
	id := domain.ReportID(uuid.New())
	out := v1handler.ReportToV1Specs(&domain.Report{
		ID: id, URL: "http://bad.example", Note: "phish", CreatedAt: time.Unix(1700000000, 250000000),
	})

	require.Equal(t, uuid.UUID(id), out.ID)
	require.Equal(t, "http://bad.example", out.URL)
	require.Equal(t, "phish", out.Note)
	require.InDelta(t, 1700000000.25, out.Ts, 1e-6)
}

func TestListReports_Handler(t *testing.T) {
	sc, h := newHandler(t)
	sc.EXPECT().Reports(gomock.Any(), 5).Return([]domain.Report{{URL: "http://b"}, {URL: "http://a"}}, nil)
	sc.EXPECT().Reports(gomock.Any(), v1handler.DefaultLimit).Return(nil, nil)

	res, err := h.ListReports(context.Background(), v1specs.ListReportsParams{Limit: v1specs.NewOptInt(5)})
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, "http://b", res[0].URL)

	res, err = h.ListReports(context.Background(), v1specs.ListReportsParams{})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Empty(t, res)
}

func TestCreateReport(t *testing.T) {
	sc, srv := newTestServer(t, 1<<20)
	id := domain.ReportID(uuid.New())

	sc.EXPECT().Report(gomock.Any(), "http://bad.example", "phish").Return(&domain.Report{
		ID: id, URL: "http://bad.example", Note: "phish", CreatedAt: time.Unix(1700000000, 0),
	}, nil)

	status, body := do(t, srv, http.MethodPost, "/report", `{"url":"http://bad.example","note":"phish"}`)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t,
		`{"status":"ok","entry":{"id":"`+id.String()+`","url":"http://bad.example","note":"phish","ts":1700000000}}`,
		body)
}

func TestCreateReport_NullNote(t *testing.T) {
	sc, srv := newTestServer(t, 1<<20)
	sc.EXPECT().Report(gomock.Any(), "http://bad.example", "").Return(&domain.Report{URL: "http://bad.example"}, nil)

	status, _ := do(t, srv, http.MethodPost, "/report", `{"url":"http://bad.example","note":null}`)
	require.Equal(t, http.StatusOK, status)
}

func TestCreateReport_BadRequests(t *testing.T) {
	for _, body := range []string{`{}`, `{"note":"x"}`} {
		sc, srv := newTestServer(t, 1<<20)
		sc.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		status, res := do(t, srv, http.MethodPost, "/report", body)
		require.Equal(t, http.StatusBadRequest, status, body)
		require.JSONEq(t, `{"code":"BAD_REQUEST","message":"Missing url"}`, res)
	}

	// null and empty urls reach the scanner as ""
	for _, body := range []string{`{"url":null}`, `{"url":""}`} {
		sc, srv := newTestServer(t, 1<<20)
		sc.EXPECT().Report(gomock.Any(), "", "").Return(nil, serrors.With(serrors.ErrBadRequest, "Missing url"))

		status, res := do(t, srv, http.MethodPost, "/report", body)
		require.Equal(t, http.StatusBadRequest, status, body)
		require.JSONEq(t, `{"code":"BAD_REQUEST","message":"Missing url"}`, res)
	}
}

func TestCreateReport_StorageFailure(t *testing.T) {
	sc, srv := newTestServer(t, 1<<20)
	sc.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))

	status, res := do(t, srv, http.MethodPost, "/report", `{"url":"http://bad.example"}`)
	require.Equal(t, http.StatusInternalServerError, status)
	require.JSONEq(t, `{"code":"INTERNAL","message":"internal error"}`, res)
}

func TestListReports(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		sc, srv := newTestServer(t, 1<<20)
		sc.EXPECT().Reports(gomock.Any(), v1handler.DefaultLimit).Return(nil, nil)

		status, body := do(t, srv, http.MethodGet, "/reports", "")
		require.Equal(t, http.StatusOK, status)
		require.JSONEq(t, `[]`, body)
	})

	t.Run("explicit limit", func(t *testing.T) {
		sc, srv := newTestServer(t, 1<<20)
		reports := []domain.Report{
			{ID: domain.ReportID(uuid.New()), URL: "http://b", CreatedAt: time.Unix(2, 0)},
			{ID: domain.ReportID(uuid.New()), URL: "http://a", CreatedAt: time.Unix(1, 0)},
		}
		sc.EXPECT().Reports(gomock.Any(), 2).Return(reports, nil)

		status, body := do(t, srv, http.MethodGet, "/reports?limit=2", "")
		require.Equal(t, http.StatusOK, status)

		var got []struct {
			ID  string `json:"id"`
			URL string `json:"url"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		require.Len(t, got, 2)
		require.Equal(t, "http://b", got[0].URL)
		require.Equal(t, reports[0].ID.String(), got[0].ID)
	})

	t.Run("invalid limits", func(t *testing.T) {
		for _, q := range []string{"abc", "1.5", ""} {
			sc, srv := newTestServer(t, 1<<20)
			sc.EXPECT().Reports(gomock.Any(), gomock.Any()).Times(0)

			status, body := do(t, srv, http.MethodGet, "/reports?limit="+q, "")
			require.Equal(t, http.StatusBadRequest, status, q)
			require.JSONEq(t, `{"code":"BAD_REQUEST","message":"Invalid limit"}`, body)
		}
	})

	t.Run("negative limit", func(t *testing.T) {
		sc, srv := newTestServer(t, 1<<20)
		sc.EXPECT().Reports(gomock.Any(), -1).
			Return(nil, serrors.With(serrors.ErrBadRequest, "limit must be a non-negative integer"))

		status, body := do(t, srv, http.MethodGet, "/reports?limit=-1", "")
		require.Equal(t, http.StatusBadRequest, status)
		require.JSONEq(t, `{"code":"BAD_REQUEST","message":"limit must be a non-negative integer"}`, body)
	})
}
