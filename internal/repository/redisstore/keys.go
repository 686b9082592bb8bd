package redisstore

// All keys are prefixed with "jobs:" to share a redis with other apps.
const keyPrefix = "jobs:"

// sessionKey holds one live refresh token: jobs:session:{userID}:{tokenID}
func sessionKey(userID, tokenID string) string {
	return keyPrefix + "session:" + userID + ":" + tokenID
}

// userSessionsKey is the Set of token ids issued to a user, used to revoke
// them all at once: jobs:sessions:{userID}
func userSessionsKey(userID string) string {
	return keyPrefix + "sessions:" + userID
}
