// Package kvrepo implements the repository interfaces over the shared
// key-value store. Each concern owns one or more string keys whose values are
// JSON-serialized; read-modify-write sequences are not transactional.
package kvrepo

const (
	keyApplications  = "user_applications"
	keyConversations = "dm_conversations"
	keyOffers        = "accommodationOffers"
	keyApproved      = "approvedAccommodation"
	keyUserStatus    = "userStatus"
	keyFilters       = "search_filters"
	keyHistory       = "search_history"
	keySuggestions   = "search_suggestions"
	keyLikedProps    = "liked_properties"
	keyUserName      = "userName"
	keyProfileImage  = "profileImage"
	keyPersonalInfo  = "personalInfo"
	draftKeyPrefix   = "application_form_"
)

func draftKey(propertyID string) string {
	return draftKeyPrefix + propertyID
}
