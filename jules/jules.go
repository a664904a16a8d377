// Package jules is a client for the Jules API, a service that runs
// long-lived AI agent sessions against source repositories.
//
// A Client exposes three services: Sessions (create agent work, approve
// plans, send follow-up messages, wait for completion), Activities (the
// timeline of events inside a session), and Sources (the repositories the
// service can act on).
//
//	client, err := jules.NewClient(os.Getenv("JULES_API_KEY"))
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	session, err := client.Sessions.Create(ctx, &jules.CreateSessionRequest{
//	    Prompt: "Fix the flaky TestLogin test",
//	    Source: "sources/github/acme/webapp",
//	})
//	if err != nil {
//	    return err
//	}
//
//	session, err = client.Sessions.WaitForCompletion(ctx, session.ID, nil)
//
// Failed requests are retried with exponential backoff for network and
// 5xx failures; all other failures surface immediately as a typed *Error
// whose Kind callers can switch on.
package jules

// Version is the client library version, sent in the User-Agent header.
const Version = "0.3.0"

const userAgent = "jules-go/" + Version
