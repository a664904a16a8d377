package jules

import "time"

// SessionState is the lifecycle state of a session. The wire values are
// SCREAMING_SNAKE_CASE strings.
type SessionState string

const (
	SessionStateUnspecified          SessionState = "STATE_UNSPECIFIED"
	SessionStateQueued               SessionState = "QUEUED"
	SessionStatePlanning             SessionState = "PLANNING"
	SessionStateAwaitingPlanApproval SessionState = "AWAITING_PLAN_APPROVAL"
	SessionStateAwaitingUserFeedback SessionState = "AWAITING_USER_FEEDBACK"
	SessionStateInProgress           SessionState = "IN_PROGRESS"
	SessionStatePaused               SessionState = "PAUSED"
	SessionStateCompleted            SessionState = "COMPLETED"
	SessionStateFailed               SessionState = "FAILED"
)

// IsTerminal reports whether no further state transitions can occur.
// Only COMPLETED and FAILED are terminal; every other state means the
// session is still moving.
func (s SessionState) IsTerminal() bool {
	return s == SessionStateCompleted || s == SessionStateFailed
}

// Session is a long-running unit of agent work against a source
// repository.
type Session struct {
	Name          string         `json:"name,omitempty"`
	ID            string         `json:"id,omitempty"`
	Prompt        string         `json:"prompt,omitempty"`
	SourceContext *SourceContext `json:"sourceContext,omitempty"`
	Title         string         `json:"title,omitempty"`
	State         SessionState   `json:"state,omitempty"`
	URL           string         `json:"url,omitempty"`
	CreateTime    *time.Time     `json:"createTime,omitempty"`
	UpdateTime    *time.Time     `json:"updateTime,omitempty"`
	Output        *SessionOutput `json:"output,omitempty"`
}

// SessionOutput is the final product of a completed session.
type SessionOutput struct {
	PullRequest *PullRequest `json:"pullRequest,omitempty"`
}

// SourceContext ties a session to the repository it works on.
type SourceContext struct {
	Source            string             `json:"source,omitempty"`
	GitHubRepoContext *GitHubRepoContext `json:"githubRepoContext,omitempty"`
}

// GitHubRepoContext narrows a session to a starting branch.
type GitHubRepoContext struct {
	StartingBranch string `json:"startingBranch,omitempty"`
}

// PullRequest describes a pull request produced by a session.
type PullRequest struct {
	URL         string `json:"url,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Source is a handle to a repository the service can act on.
type Source struct {
	ID         string      `json:"id,omitempty"`
	Name       string      `json:"name,omitempty"`
	GitHubRepo *GitHubRepo `json:"githubRepo,omitempty"`
}

// GitHubRepo describes a GitHub repository source.
type GitHubRepo struct {
	Owner         string         `json:"owner,omitempty"`
	Repo          string         `json:"repo,omitempty"`
	IsPrivate     bool           `json:"isPrivate,omitempty"`
	DefaultBranch string         `json:"defaultBranch,omitempty"`
	Branches      []GitHubBranch `json:"branches,omitempty"`
}

// GitHubBranch is a branch of a GitHub repository source.
type GitHubBranch struct {
	DisplayName string `json:"displayName,omitempty"`
}

// Activity is a single timeline event emitted during a session. Exactly
// one of the event pointers is populated per instance; use Event to
// dispatch on it.
type Activity struct {
	Name        string     `json:"name,omitempty"`
	ID          string     `json:"id,omitempty"`
	Description string     `json:"description,omitempty"`
	CreateTime  *time.Time `json:"createTime,omitempty"`
	Originator  string     `json:"originator,omitempty"`
	Artifacts   []Artifact `json:"artifacts,omitempty"`

	AgentMessaged    *AgentMessagedEvent    `json:"agentMessaged,omitempty"`
	UserMessaged     *UserMessagedEvent     `json:"userMessaged,omitempty"`
	PlanGenerated    *PlanGeneratedEvent    `json:"planGenerated,omitempty"`
	PlanApproved     *PlanApprovedEvent     `json:"planApproved,omitempty"`
	ProgressUpdated  *ProgressUpdatedEvent  `json:"progressUpdated,omitempty"`
	SessionCompleted *SessionCompletedEvent `json:"sessionCompleted,omitempty"`
	SessionFailed    *SessionFailedEvent    `json:"sessionFailed,omitempty"`
}

// ActivityEvent is the closed set of activity event payloads. A type
// switch over it covers every event kind:
//
//	switch ev := activity.Event().(type) {
//	case *AgentMessagedEvent:
//	    fmt.Println("agent:", ev.Message)
//	case *SessionFailedEvent:
//	    fmt.Println("failed:", ev.Reason)
//	case nil:
//	    // no event payload
//	}
type ActivityEvent interface {
	isActivityEvent()
}

// AgentMessagedEvent is a message from the agent to the user.
type AgentMessagedEvent struct {
	Message string `json:"message,omitempty"`
}

// UserMessagedEvent is a message from the user to the agent.
type UserMessagedEvent struct {
	Message string `json:"message,omitempty"`
}

// PlanGeneratedEvent carries the plan the agent proposes.
type PlanGeneratedEvent struct {
	Plan *Plan `json:"plan,omitempty"`
}

// PlanApprovedEvent records that the plan was approved.
type PlanApprovedEvent struct {
	PlanID string `json:"planId,omitempty"`
}

// ProgressUpdatedEvent is a progress report from the agent.
type ProgressUpdatedEvent struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// SessionCompletedEvent records that the session finished successfully.
type SessionCompletedEvent struct{}

// SessionFailedEvent records that the session failed.
type SessionFailedEvent struct {
	Reason string `json:"reason,omitempty"`
}

func (*AgentMessagedEvent) isActivityEvent()    {}
func (*UserMessagedEvent) isActivityEvent()     {}
func (*PlanGeneratedEvent) isActivityEvent()    {}
func (*PlanApprovedEvent) isActivityEvent()     {}
func (*ProgressUpdatedEvent) isActivityEvent()  {}
func (*SessionCompletedEvent) isActivityEvent() {}
func (*SessionFailedEvent) isActivityEvent()    {}

// Event returns the populated event payload, or nil when the activity
// carries none.
func (a *Activity) Event() ActivityEvent {
	switch {
	case a.AgentMessaged != nil:
		return a.AgentMessaged
	case a.UserMessaged != nil:
		return a.UserMessaged
	case a.PlanGenerated != nil:
		return a.PlanGenerated
	case a.PlanApproved != nil:
		return a.PlanApproved
	case a.ProgressUpdated != nil:
		return a.ProgressUpdated
	case a.SessionCompleted != nil:
		return a.SessionCompleted
	case a.SessionFailed != nil:
		return a.SessionFailed
	default:
		return nil
	}
}

// Artifact is a unit of data attached to an activity.
type Artifact struct {
	ChangeSet  *ChangeSet  `json:"changeSet,omitempty"`
	Media      *Media      `json:"media,omitempty"`
	BashOutput *BashOutput `json:"bashOutput,omitempty"`
}

// ChangeSet is a set of code changes produced by the agent.
type ChangeSet struct {
	Source   string    `json:"source,omitempty"`
	GitPatch *GitPatch `json:"gitPatch,omitempty"`
}

// GitPatch is a unified diff against a base commit.
type GitPatch struct {
	UnidiffPatch           string `json:"unidiffPatch,omitempty"`
	BaseCommitID           string `json:"baseCommitId,omitempty"`
	SuggestedCommitMessage string `json:"suggestedCommitMessage,omitempty"`
}

// Media is inline binary content, base64-encoded on the wire.
type Media struct {
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// BashOutput is the captured output of a shell command the agent ran.
type BashOutput struct {
	Command  string `json:"command,omitempty"`
	Output   string `json:"output,omitempty"`
	ExitCode int    `json:"exitCode,omitempty"`
}

// Plan is the agent's proposed sequence of steps.
type Plan struct {
	ID         string     `json:"id,omitempty"`
	Steps      []PlanStep `json:"steps,omitempty"`
	CreateTime *time.Time `json:"createTime,omitempty"`
}

// PlanStep is one step of a plan.
type PlanStep struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Index       int    `json:"index,omitempty"`
}

// SessionsListResponse is one page of sessions.
type SessionsListResponse struct {
	Sessions      []Session `json:"sessions,omitempty"`
	NextPageToken string    `json:"nextPageToken,omitempty"`
}

// ActivitiesListResponse is one page of activities.
type ActivitiesListResponse struct {
	Activities    []Activity `json:"activities,omitempty"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

// SourcesListResponse is one page of sources.
type SourcesListResponse struct {
	Sources       []Source `json:"sources,omitempty"`
	NextPageToken string   `json:"nextPageToken,omitempty"`
}
