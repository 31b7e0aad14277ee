package model

// Document store key helpers. The layout mirrors the original data tree:
// surveys/<category>/<user> for category records and
// surveys/<user>/total_footprint for the aggregate snapshot.

// SurveyKey addresses the per-(user, category) survey record.
func SurveyKey(c Category, userID string) string {
	return "surveys/" + string(c) + "/" + userID
}

// TotalKey addresses the per-user aggregate footprint snapshot.
func TotalKey(userID string) string {
	return "surveys/" + userID + "/total_footprint"
}
