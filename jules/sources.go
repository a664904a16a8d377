package jules

import (
	"context"
	"iter"
	"net/url"
	"strconv"
)

// SourcesService lists the repositories the service can act on.
type SourcesService struct {
	client *Client
}

// SourcesListOptions control a single sources List page.
type SourcesListOptions struct {
	// Filter narrows the listing with a service-side filter expression.
	Filter string
	// PageSize is the maximum number of items per page.
	PageSize int
	// PageToken is the continuation token from the previous page.
	PageToken string
}

func (o *SourcesListOptions) query() url.Values {
	query := url.Values{}

	if o == nil {
		return query
	}

	if o.Filter != "" {
		query.Set("filter", o.Filter)
	}

	if o.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(o.PageSize))
	}

	if o.PageToken != "" {
		query.Set("pageToken", o.PageToken)
	}

	return query
}

// Get fetches a source by bare id or fully-qualified name.
func (s *SourcesService) Get(ctx context.Context, sourceID string) (*Source, error) {
	var source Source
	if err := s.client.get(ctx, sourcePath(sourceID), nil, &source); err != nil {
		return nil, err
	}

	return &source, nil
}

// List fetches one page of sources.
func (s *SourcesService) List(ctx context.Context, opts *SourcesListOptions) (*SourcesListResponse, error) {
	var page SourcesListResponse
	if err := s.client.get(ctx, "/sources", opts.query(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// ListAll fetches every source matching the filter, following pagination
// to exhaustion. An empty filter lists everything.
func (s *SourcesService) ListAll(ctx context.Context, filter string) ([]Source, error) {
	return collectPages(ctx, s.pageFetcher(filter))
}

// All returns an iterator over matching sources, fetching pages lazily.
// Each range starts a fresh traversal.
func (s *SourcesService) All(ctx context.Context, filter string) iter.Seq2[Source, error] {
	return iterPages(ctx, s.pageFetcher(filter))
}

func (s *SourcesService) pageFetcher(filter string) pageFetch[Source] {
	return func(ctx context.Context, pageToken string) ([]Source, string, error) {
		page, err := s.List(ctx, &SourcesListOptions{Filter: filter, PageToken: pageToken})
		if err != nil {
			return nil, "", err
		}

		return page.Sources, page.NextPageToken, nil
	}
}
