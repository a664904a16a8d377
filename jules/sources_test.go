package jules

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourcesGet(t *testing.T) {
	t.Parallel()

	fake := &fakeResponder{
		fn: func(_ int, _ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK,
				`{"name":"sources/src1","id":"src1","githubRepo":{"owner":"amp-labs","repo":"connectors"}}`), nil
		},
	}
	client := newTestClient(t, fake.transport())

	source, err := client.Sources.Get(context.Background(), "sources/src1")
	require.NoError(t, err)

	assert.Equal(t, "/v1alpha/sources/src1", fake.requests[0].URL.Path)
	require.NotNil(t, source.GitHubRepo)
	assert.Equal(t, "amp-labs", source.GitHubRepo.Owner)
}

func TestSourcesList_FilterParam(t *testing.T) {
	t.Parallel()

	fake := &fakeResponder{
		fn: func(_ int, _ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"sources":[{"id":"src1"}]}`), nil
		},
	}
	client := newTestClient(t, fake.transport())

	_, err := client.Sources.List(context.Background(), &SourcesListOptions{
		Filter:   `github_repo.owner = "amp-labs"`,
		PageSize: 10,
	})
	require.NoError(t, err)

	query := fake.requests[0].URL.Query()
	assert.Equal(t, "/v1alpha/sources", fake.requests[0].URL.Path)
	assert.Equal(t, `github_repo.owner = "amp-labs"`, query.Get("filter"))
	assert.Equal(t, "10", query.Get("pageSize"))
}

func TestSourcesList_NilOptions(t *testing.T) {
	t.Parallel()

	fake := &fakeResponder{
		fn: func(_ int, _ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"sources":[]}`), nil
		},
	}
	client := newTestClient(t, fake.transport())

	_, err := client.Sources.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, fake.requests[0].URL.RawQuery)
}

func TestSourcesListAll_CarriesFilterAcrossPages(t *testing.T) {
	t.Parallel()

	pages := []string{
		`{"sources":[{"id":"src1"}],"nextPageToken":"next"}`,
		`{"sources":[{"id":"src2"}]}`,
	}

	fake := &fakeResponder{
		fn: func(call int, _ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, pages[call-1]), nil
		},
	}
	client := newTestClient(t, fake.transport())

	sources, err := client.Sources.ListAll(context.Background(), "name:demo")
	require.NoError(t, err)

	require.Len(t, sources, 2)
	assert.Equal(t, 2, fake.calls)
	assert.Equal(t, "name:demo", fake.requests[0].URL.Query().Get("filter"))
	assert.Equal(t, "name:demo", fake.requests[1].URL.Query().Get("filter"))
	assert.Equal(t, "next", fake.requests[1].URL.Query().Get("pageToken"))
}
