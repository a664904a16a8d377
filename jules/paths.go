package jules

import "strings"

// resourcePath normalizes a resource identifier to its path form. Both
// bare ids ("abc123") and fully-qualified names ("sessions/abc123") are
// accepted.
func resourcePath(collection, id string) string {
	if strings.HasPrefix(id, collection+"/") {
		return "/" + id
	}

	return "/" + collection + "/" + id
}

func sessionPath(sessionID string) string {
	return resourcePath("sessions", sessionID)
}

func activityPath(sessionID, activityID string) string {
	return sessionPath(sessionID) + resourcePath("activities", activityID)
}

func sourcePath(sourceID string) string {
	return resourcePath("sources", sourceID)
}
