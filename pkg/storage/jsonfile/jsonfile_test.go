package jsonfile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bangsafe/pkg/domain"
	"bangsafe/pkg/storage"
	"bangsafe/pkg/storage/jsonfile"
)

func newStore(t *testing.T) (*jsonfile.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "reports.json")
	s, err := jsonfile.New(context.Background(), jsonfile.Options{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func newReport(url, note string, at time.Time) domain.Report {
	return domain.Report{ID: domain.ReportID(uuid.New()), URL: url, Note: note, CreatedAt: at}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("initializes missing document", func(t *testing.T) {
		t.Parallel()

		_, path := newStore(t)
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		require.JSONEq(t, `{"reports": []}`, string(b))
	})

	t.Run("keeps existing document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "reports.json")
		existing := `{"reports":[{"id":"6f1c1f3e-8d0a-4a53-9a53-6c2d1b0f2a11","url":"u","note":"n","ts":1.5}]}`
		require.NoError(t, os.WriteFile(path, []byte(existing), 0o600))

		s, err := jsonfile.New(context.Background(), jsonfile.Options{Path: path})
		require.NoError(t, err)

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, existing, string(b))

		reports, err := s.LatestReports(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		require.Equal(t, "6f1c1f3e-8d0a-4a53-9a53-6c2d1b0f2a11", reports[0].ID.String())
		require.Equal(t, "n", reports[0].Note)
		require.WithinDuration(t, time.Unix(1, 500_000_000), reports[0].CreatedAt, time.Microsecond)
	})
}

func TestStore_AppendAndLatest(t *testing.T) {
	t.Parallel()

	s, path := newStore(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var appended []domain.Report
	for i := range 3 {
		r := newReport("http://bad.example/"+string(rune('a'+i)), "note", base.Add(time.Duration(i)*time.Second))
		got, err := s.AppendReport(ctx, r)
		require.NoError(t, err)
		require.Equal(t, r, *got)
		appended = append(appended, r)
	}

	t.Run("newest first", func(t *testing.T) {
		reports, err := s.LatestReports(ctx, 100)
		require.NoError(t, err)
		require.Len(t, reports, 3)
		for i, r := range reports {
			want := appended[len(appended)-1-i]
			require.Equal(t, want.ID, r.ID)
			require.Equal(t, want.URL, r.URL)
			require.WithinDuration(t, want.CreatedAt, r.CreatedAt, time.Microsecond)
		}
	})

	t.Run("limit", func(t *testing.T) {
		reports, err := s.LatestReports(ctx, 1)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		require.Equal(t, appended[2].ID, reports[0].ID)
	})

	t.Run("zero limit", func(t *testing.T) {
		reports, err := s.LatestReports(ctx, 0)
		require.NoError(t, err)
		require.NotNil(t, reports)
		require.Empty(t, reports)
	})

	t.Run("document is oldest first and pretty printed", func(t *testing.T) {
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(b), "\n  \"reports\": [\n")

		var doc struct {
			Reports []struct {
				ID string `json:"id"`
			} `json:"reports"`
		}
		require.NoError(t, json.Unmarshal(b, &doc))
		require.Len(t, doc.Reports, 3)
		require.Equal(t, appended[0].ID.String(), doc.Reports[0].ID)
	})
}

func TestStore_EmptyDocument(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	reports, err := s.LatestReports(context.Background(), 100)
	require.NoError(t, err)
	require.Empty(t, reports)
}

func TestStore_KeepsNonASCII(t *testing.T) {
	t.Parallel()

	s, path := newStore(t)
	_, err := s.AppendReport(context.Background(), newReport("http://bkash-ঝুঁকি.example", "প্রতারণা <b>", time.Now()))
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "প্রতারণা <b>")
	require.Contains(t, string(b), "bkash-ঝুঁকি")
}

func TestStore_CorruptDocument(t *testing.T) {
	t.Parallel()

	s, path := newStore(t)
	ctx := context.Background()
	require.NoError(t, os.WriteFile(path, []byte(`{"reports": [`), 0o600))

	reports, err := s.LatestReports(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, reports)

	r := newReport("http://bad.example", "phish", time.Now())
	_, err = s.AppendReport(ctx, r)
	require.NoError(t, err)

	reports, err = s.LatestReports(ctx, 10)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, r.ID, reports[0].ID)
}

func TestStore_MissingReportsKey(t *testing.T) {
	t.Parallel()

	s, path := newStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))

	reports, err := s.LatestReports(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, reports)
}

func TestStore_SkipsInvalidIDs(t *testing.T) {
	t.Parallel()

	s, path := newStore(t)
	doc := `{"reports":[
		{"id":"not-a-uuid","url":"a","note":"","ts":1},
		{"id":"6f1c1f3e-8d0a-4a53-9a53-6c2d1b0f2a11","url":"b","note":"","ts":2}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	reports, err := s.LatestReports(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, "b", reports[0].URL)

	// entries that cannot be listed are still preserved on append
	_, err = s.AppendReport(context.Background(), newReport("c", "", time.Now()))
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "not-a-uuid")
}

func TestStore_ConcurrentAppends(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AppendReport(ctx, newReport("http://bad.example", "", time.Now()))
			assert.NoError(t, err)
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.LatestReports(ctx, n)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	reports, err := s.LatestReports(ctx, 2*n)
	require.NoError(t, err)
	require.Len(t, reports, n)

	seen := make(map[domain.ReportID]struct{}, n)
	for _, r := range reports {
		seen[r.ID] = struct{}{}
	}
	require.Len(t, seen, n)
}

func TestStore_Closed(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	require.NoError(t, s.Close())

	_, err := s.AppendReport(context.Background(), newReport("u", "", time.Now()))
	require.ErrorIs(t, err, storage.ErrClosed)

	_, err = s.LatestReports(context.Background(), 1)
	require.ErrorIs(t, err, storage.ErrClosed)
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	s, _ := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.AppendReport(ctx, newReport("u", "", time.Now()))
	require.ErrorIs(t, err, context.Canceled)
}
