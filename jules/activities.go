package jules

import (
	"context"
	"iter"
)

// ActivitiesService reads the timeline of events within a session.
type ActivitiesService struct {
	client *Client
}

// Get fetches a single activity. Both ids accept bare or fully-qualified
// forms.
func (a *ActivitiesService) Get(ctx context.Context, sessionID, activityID string) (*Activity, error) {
	var activity Activity
	if err := a.client.get(ctx, activityPath(sessionID, activityID), nil, &activity); err != nil {
		return nil, err
	}

	return &activity, nil
}

// List fetches one page of a session's activities.
func (a *ActivitiesService) List(ctx context.Context, sessionID string, opts *ListOptions) (*ActivitiesListResponse, error) {
	var page ActivitiesListResponse
	if err := a.client.get(ctx, sessionPath(sessionID)+"/activities", opts.query(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// ListAll fetches every activity of a session in timeline order,
// following pagination to exhaustion.
func (a *ActivitiesService) ListAll(ctx context.Context, sessionID string) ([]Activity, error) {
	return collectPages(ctx, a.pageFetcher(sessionID))
}

// All returns an iterator over a session's activities, fetching pages
// lazily. Each range starts a fresh traversal.
func (a *ActivitiesService) All(ctx context.Context, sessionID string) iter.Seq2[Activity, error] {
	return iterPages(ctx, a.pageFetcher(sessionID))
}

func (a *ActivitiesService) pageFetcher(sessionID string) pageFetch[Activity] {
	return func(ctx context.Context, pageToken string) ([]Activity, string, error) {
		page, err := a.List(ctx, sessionID, &ListOptions{PageToken: pageToken})
		if err != nil {
			return nil, "", err
		}

		return page.Activities, page.NextPageToken, nil
	}
}
