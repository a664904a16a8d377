package jules

import (
	"context"
	"iter"
	"net/url"
	"strconv"
)

// SessionsService manages sessions: creating agent work, fetching and
// listing it, steering it with plan approvals and messages, and waiting
// for it to finish.
type SessionsService struct {
	client *Client
}

// CreateSessionRequest describes a new session. Prompt and Source are
// required; Source is a fully-qualified source name
// ("sources/github/owner/repo") or bare source id.
type CreateSessionRequest struct {
	Prompt              string
	Source              string
	StartingBranch      string
	Title               string
	RequirePlanApproval bool
}

// createSessionBody is the wire shape of a session create call.
type createSessionBody struct {
	Prompt              string        `json:"prompt"`
	SourceContext       SourceContext `json:"sourceContext"`
	Title               string        `json:"title,omitempty"`
	RequirePlanApproval bool          `json:"requirePlanApproval,omitempty"`
}

// ListOptions control a single List page.
type ListOptions struct {
	// PageSize is the maximum number of items per page. Zero lets the
	// service choose.
	PageSize int
	// PageToken is the continuation token from the previous page's
	// NextPageToken. Empty requests the first page.
	PageToken string
}

func (o *ListOptions) query() url.Values {
	query := url.Values{}

	if o == nil {
		return query
	}

	if o.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(o.PageSize))
	}

	if o.PageToken != "" {
		query.Set("pageToken", o.PageToken)
	}

	return query
}

// Create starts a new session.
func (s *SessionsService) Create(ctx context.Context, req *CreateSessionRequest) (*Session, error) {
	body := createSessionBody{
		Prompt: req.Prompt,
		SourceContext: SourceContext{
			Source: req.Source,
		},
		Title:               req.Title,
		RequirePlanApproval: req.RequirePlanApproval,
	}

	if req.StartingBranch != "" {
		body.SourceContext.GitHubRepoContext = &GitHubRepoContext{
			StartingBranch: req.StartingBranch,
		}
	}

	var session Session
	if err := s.client.post(ctx, "/sessions", body, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// Get fetches a session by bare id or fully-qualified name.
func (s *SessionsService) Get(ctx context.Context, sessionID string) (*Session, error) {
	var session Session
	if err := s.client.get(ctx, sessionPath(sessionID), nil, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// List fetches one page of sessions.
func (s *SessionsService) List(ctx context.Context, opts *ListOptions) (*SessionsListResponse, error) {
	var page SessionsListResponse
	if err := s.client.get(ctx, "/sessions", opts.query(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// ListAll fetches every session, following pagination to exhaustion.
func (s *SessionsService) ListAll(ctx context.Context) ([]Session, error) {
	return collectPages(ctx, s.fetchPage)
}

// All returns an iterator over every session, fetching pages lazily.
// Each range starts a fresh traversal.
func (s *SessionsService) All(ctx context.Context) iter.Seq2[Session, error] {
	return iterPages(ctx, s.fetchPage)
}

func (s *SessionsService) fetchPage(ctx context.Context, pageToken string) ([]Session, string, error) {
	page, err := s.List(ctx, &ListOptions{PageToken: pageToken})
	if err != nil {
		return nil, "", err
	}

	return page.Sessions, page.NextPageToken, nil
}

// ApprovePlan approves the plan of a session waiting in
// AWAITING_PLAN_APPROVAL.
func (s *SessionsService) ApprovePlan(ctx context.Context, sessionID string) error {
	return s.client.post(ctx, sessionPath(sessionID)+":approvePlan", nil, nil)
}

// sendMessageBody is the wire shape of a send-message call.
type sendMessageBody struct {
	Prompt string `json:"prompt"`
}

// SendMessage sends a follow-up instruction into a running session.
func (s *SessionsService) SendMessage(ctx context.Context, sessionID, prompt string) error {
	return s.client.post(ctx, sessionPath(sessionID)+":sendMessage", sendMessageBody{Prompt: prompt}, nil)
}
