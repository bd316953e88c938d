package fakeapi

import "time"

// envelope - {success, message, data, code} wrapper used by every response
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Code    string      `json:"code"`
}

// User - registered account
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	password string
}

// Family - family owned by the user who created it
type Family struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	InviteCode  string    `json:"inviteCode"`
	CreatedAt   time.Time `json:"createdAt"`
	owner       string
}

// Baby - baby profile belonging to a family
type Baby struct {
	ID          int64     `json:"id"`
	FamilyID    int64     `json:"familyId"`
	Name        string    `json:"name"`
	Gender      string    `json:"gender"`
	Birthday    string    `json:"birthday"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GrowthRecord - growth record of a baby
type GrowthRecord struct {
	ID        int64     `json:"id"`
	BabyID    int64     `json:"babyId"`
	BabyName  string    `json:"babyName"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	MediaURLs []string  `json:"mediaUrls"`
	Tags      []string  `json:"tags"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type loginResponse struct {
	Token string `json:"token"`
	Type  string `json:"type"`
	User  *User  `json:"user"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type familyCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type babyCreateRequest struct {
	FamilyID    int64  `json:"familyId"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	Birthday    string `json:"birthday"`
	Description string `json:"description"`
}

type growthRecordCreateRequest struct {
	BabyID    int64    `json:"babyId"`
	Type      string   `json:"type"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	MediaURLs []string `json:"mediaUrls"`
	Tags      []string `json:"tags"`
}
