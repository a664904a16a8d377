package jules

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStateIsTerminal(t *testing.T) {
	t.Parallel()

	terminal := []SessionState{SessionStateCompleted, SessionStateFailed}
	for _, state := range terminal {
		assert.True(t, state.IsTerminal(), "%s", state)
	}

	moving := []SessionState{
		SessionStateUnspecified,
		SessionStateQueued,
		SessionStatePlanning,
		SessionStateAwaitingPlanApproval,
		SessionStateAwaitingUserFeedback,
		SessionStateInProgress,
		SessionStatePaused,
	}
	for _, state := range moving {
		assert.False(t, state.IsTerminal(), "%s", state)
	}
}

func TestActivityEventDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		activity Activity
		want     ActivityEvent
	}{
		{
			name:     "agent messaged",
			activity: Activity{AgentMessaged: &AgentMessagedEvent{Message: "hi"}},
			want:     &AgentMessagedEvent{Message: "hi"},
		},
		{
			name:     "user messaged",
			activity: Activity{UserMessaged: &UserMessagedEvent{Message: "go on"}},
			want:     &UserMessagedEvent{Message: "go on"},
		},
		{
			name: "plan generated",
			activity: Activity{PlanGenerated: &PlanGeneratedEvent{
				Plan: &Plan{ID: "p1"},
			}},
			want: &PlanGeneratedEvent{Plan: &Plan{ID: "p1"}},
		},
		{
			name:     "plan approved",
			activity: Activity{PlanApproved: &PlanApprovedEvent{PlanID: "p1"}},
			want:     &PlanApprovedEvent{PlanID: "p1"},
		},
		{
			name:     "progress updated",
			activity: Activity{ProgressUpdated: &ProgressUpdatedEvent{Title: "working"}},
			want:     &ProgressUpdatedEvent{Title: "working"},
		},
		{
			name:     "session completed",
			activity: Activity{SessionCompleted: &SessionCompletedEvent{}},
			want:     &SessionCompletedEvent{},
		},
		{
			name:     "session failed",
			activity: Activity{SessionFailed: &SessionFailedEvent{Reason: "oom"}},
			want:     &SessionFailedEvent{Reason: "oom"},
		},
		{
			name:     "no payload",
			activity: Activity{Description: "bare"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.activity.Event())
		})
	}
}

func TestActivityDecode_OneOfPayload(t *testing.T) {
	t.Parallel()

	raw := `{
		"name": "sessions/s1/activities/a9",
		"id": "a9",
		"originator": "AGENT",
		"planGenerated": {
			"plan": {
				"id": "p1",
				"steps": [
					{"id": "st1", "title": "Read the code", "index": 0},
					{"id": "st2", "title": "Write the fix", "index": 1}
				]
			}
		}
	}`

	var activity Activity
	require.NoError(t, json.Unmarshal([]byte(raw), &activity))

	event, ok := activity.Event().(*PlanGeneratedEvent)
	require.True(t, ok)
	require.NotNil(t, event.Plan)
	require.Len(t, event.Plan.Steps, 2)
	assert.Equal(t, "Write the fix", event.Plan.Steps[1].Title)

	assert.Nil(t, activity.AgentMessaged)
	assert.Nil(t, activity.SessionFailed)
}

func TestSessionDecode(t *testing.T) {
	t.Parallel()

	raw := `{
		"name": "sessions/s1",
		"id": "s1",
		"prompt": "fix the flaky test",
		"state": "COMPLETED",
		"sourceContext": {
			"source": "sources/src1",
			"githubRepoContext": {"startingBranch": "main"}
		},
		"output": {
			"pullRequest": {"url": "https://github.com/amp-labs/demo/pull/7"}
		}
	}`

	var session Session
	require.NoError(t, json.Unmarshal([]byte(raw), &session))

	assert.Equal(t, SessionStateCompleted, session.State)
	require.NotNil(t, session.SourceContext)
	require.NotNil(t, session.SourceContext.GitHubRepoContext)
	assert.Equal(t, "main", session.SourceContext.GitHubRepoContext.StartingBranch)
	require.NotNil(t, session.Output)
	require.NotNil(t, session.Output.PullRequest)
	assert.Equal(t, "https://github.com/amp-labs/demo/pull/7", session.Output.PullRequest.URL)
}
