package baby

import "encoding/json"

// Gender values accepted by the Baby Care API
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

// Growth record types accepted by the Baby Care API
const (
	RecordTypePhoto     = "PHOTO"
	RecordTypeVideo     = "VIDEO"
	RecordTypeDiary     = "DIARY"
	RecordTypeMilestone = "MILESTONE"
)

// RegisterRequest - payload of /auth/register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// LoginRequest - payload of /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// FamilyCreateRequest - payload of /family/create
type FamilyCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// BabyCreateRequest - payload of /family/baby/add
// FamilyID holds the raw JSON value the server returned as the family id
type BabyCreateRequest struct {
	FamilyID    json.RawMessage `json:"familyId"`
	Name        string          `json:"name"`
	Gender      string          `json:"gender"`
	Birthday    string          `json:"birthday"`
	Description string          `json:"description"`
}

// GrowthRecordCreateRequest - payload of /growth-record/create
// BabyID holds the raw JSON value the server returned as the baby id
type GrowthRecordCreateRequest struct {
	BabyID    json.RawMessage `json:"babyId"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	MediaURLs []string        `json:"mediaUrls"`
	Tags      []string        `json:"tags"`
}

// MarshalJSON - encodes nil media and tag lists as empty arrays
func (r GrowthRecordCreateRequest) MarshalJSON() ([]byte, error) {
	type plain GrowthRecordCreateRequest

	p := plain(r)
	if p.MediaURLs == nil {
		p.MediaURLs = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	return json.Marshal(p)
}
