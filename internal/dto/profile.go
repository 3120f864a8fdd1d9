package dto

import "encoding/json"

// ProfileViewRequest selects exactly one user by internal id or by
// username. When both are set the id wins.
type ProfileViewRequest struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
}

// SkillItem is a full catalog entry in profile views.
type SkillItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProfileViewResponse is the composed profile for viewProfile: skills
// and interests are full catalog entries, matches are usernames.
type ProfileViewResponse struct {
	FName         string             `json:"fname"`
	LName         string             `json:"lname"`
	Username      string             `json:"username"`
	Email         string             `json:"email"`
	Skills        []SkillItem        `json:"skills"`
	Interests     []SkillItem        `json:"interests"`
	Matches       []string           `json:"matches"`
	Bio           string             `json:"bio"`
	Notifications []NotificationItem `json:"notifications"`
}

// EditProfileRequest is the full replacement payload for profile edit.
// Skills and interests carry catalog skill ids.
type EditProfileRequest struct {
	FName     string   `json:"fname"`
	LName     string   `json:"lname"`
	Email     string   `json:"email" validate:"required,email"`
	Username  string   `json:"username" validate:"required,min=3,max=15"`
	Bio       string   `json:"bio"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}

// NameList accepts either a single JSON string or an array of strings
// and normalizes to a slice. The skills/interests endpoints take both
// shapes, like the original API.
type NameList []string

func (l *NameList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = NameList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = NameList(many)
	return nil
}

// UpdateSkillsRequest adds skills (by catalog name) to the caller's
// offered set. Unknown names are dropped, not rejected.
type UpdateSkillsRequest struct {
	Skills NameList `json:"skills"`
}

// UpdateInterestsRequest adds interests (by catalog name) to the
// caller's sought set.
type UpdateInterestsRequest struct {
	Interests NameList `json:"interests"`
}

// MatchItem is one counterpart in a user's match list.
type MatchItem struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// MatchListResponse lists a user's matches. Message is set when the
// list is empty; an empty list is a successful outcome, not an error.
type MatchListResponse struct {
	Matches []MatchItem `json:"matches"`
	Message string      `json:"message,omitempty"`
}

// NotificationsResponse wraps the caller's notification list.
type NotificationsResponse struct {
	Notifications []NotificationItem `json:"notifications"`
}

// SkillListResponse lists the full skill catalog.
type SkillListResponse struct {
	Skills []SkillItem `json:"skills"`
}

// LikeRequest records a directed like against another user.
type LikeRequest struct {
	Username string `json:"username" validate:"required"`
}

// LikeResponse reports whether the like completed a mutual match.
type LikeResponse struct {
	Matched bool   `json:"matched"`
	Message string `json:"message"`
}
