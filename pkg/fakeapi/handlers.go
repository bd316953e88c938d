package fakeapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"gitlab.com/adam.stanek/growthwalk/pkg/baby"
)

func success(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: message,
		Data:    data,
		Code:    "SUCCESS",
	})
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	code := "ERROR"
	switch status {
	case http.StatusUnauthorized:
		code = "UNAUTHORIZED"
	case http.StatusNotFound:
		code = "NOT_FOUND"
	}

	log.Debug().Str("path", c.Request().URL.Path).Int("code", status).Str("message", message).Msg("Request rejected")

	if err := c.JSON(status, envelope{Success: false, Message: message, Code: code}); err != nil {
		log.Error().Err(err).Msg("Unable to write error response")
	}
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}

func notFound(message string) error {
	return echo.NewHTTPError(http.StatusNotFound, message)
}

func (s *Server) register(c echo.Context) error {
	req := registerRequest{}
	if err := c.Bind(&req); err != nil {
		return err
	}

	if req.Username == "" || req.Password == "" {
		return badRequest("username and password are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[req.Username]; ok {
		return badRequest("username already exists")
	}

	user := &User{
		ID:       s.nextID(),
		Username: req.Username,
		Email:    req.Email,
		Nickname: req.Nickname,
		password: req.Password,
	}
	s.users[user.Username] = user

	token, err := s.issueToken(user.Username)
	if err != nil {
		return err
	}

	log.Debug().Str("username", user.Username).Msg("User registered")
	return success(c, "registered", loginResponse{Token: token, Type: "Bearer", User: user})
}

func (s *Server) login(c echo.Context) error {
	req := loginRequest{}
	if err := c.Bind(&req); err != nil {
		return err
	}

	s.mu.Lock()
	user, ok := s.users[req.Username]
	s.mu.Unlock()

	if !ok || user.password != req.Password {
		return echo.NewHTTPError(http.StatusUnauthorized, "bad credentials")
	}

	token, err := s.issueToken(user.Username)
	if err != nil {
		return err
	}

	return success(c, "logged in", loginResponse{Token: token, Type: "Bearer", User: user})
}

func (s *Server) createFamily(c echo.Context) error {
	req := familyCreateRequest{}
	if err := c.Bind(&req); err != nil {
		return err
	}

	if n := utf8.RuneCountInString(req.Name); n < 2 || n > 50 {
		return badRequest("family name must have 2-50 characters")
	}
	if utf8.RuneCountInString(req.Description) > 200 {
		return badRequest("family description must have at most 200 characters")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	family := &Family{
		ID:          s.nextID(),
		Name:        req.Name,
		Description: req.Description,
		InviteCode:  strings.ToUpper(uuid.NewString()[:8]),
		CreatedAt:   time.Now(),
		owner:       c.Get(usernameKey).(string),
	}
	s.families[family.ID] = family

	log.Debug().Int64("id", family.ID).Msg("Family created")
	return success(c, "family created", family)
}

func (s *Server) addBaby(c echo.Context) error {
	req := babyCreateRequest{}
	if err := c.Bind(&req); err != nil {
		return err
	}

	if n := utf8.RuneCountInString(req.Name); n < 1 || n > 20 {
		return badRequest("baby name must have 1-20 characters")
	}
	if req.Gender != baby.GenderMale && req.Gender != baby.GenderFemale {
		return badRequest("gender must be MALE or FEMALE")
	}

	birthday, err := time.Parse("2006-01-02", req.Birthday)
	if err != nil {
		return badRequest("birthday must be a YYYY-MM-DD date")
	}
	if !birthday.Before(time.Now()) {
		return badRequest("birthday must be in the past")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	family, ok := s.families[req.FamilyID]
	if !ok || family.owner != c.Get(usernameKey).(string) {
		return notFound("family not found")
	}

	b := &Baby{
		ID:          s.nextID(),
		FamilyID:    family.ID,
		Name:        req.Name,
		Gender:      req.Gender,
		Birthday:    req.Birthday,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	s.babies[b.ID] = b

	log.Debug().Int64("id", b.ID).Int64("family_id", family.ID).Msg("Baby added")
	return success(c, "baby added", b)
}

func (s *Server) createGrowthRecord(c echo.Context) error {
	req := growthRecordCreateRequest{}
	if err := c.Bind(&req); err != nil {
		return err
	}

	switch req.Type {
	case baby.RecordTypePhoto, baby.RecordTypeVideo, baby.RecordTypeDiary, baby.RecordTypeMilestone:
	default:
		return badRequest("unknown record type")
	}
	if n := utf8.RuneCountInString(req.Title); n < 1 || n > 100 {
		return badRequest("title must have 1-100 characters")
	}
	if utf8.RuneCountInString(req.Content) > 2000 {
		return badRequest("content must have at most 2000 characters")
	}

	username := c.Get(usernameKey).(string)

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.babies[req.BabyID]
	if !ok || s.families[b.FamilyID].owner != username {
		return notFound("baby not found")
	}

	record := &GrowthRecord{
		ID:        s.nextID(),
		BabyID:    b.ID,
		BabyName:  b.Name,
		Type:      req.Type,
		Title:     req.Title,
		Content:   req.Content,
		MediaURLs: req.MediaURLs,
		Tags:      req.Tags,
		CreatedBy: username,
		CreatedAt: time.Now(),
	}
	s.records = append(s.records, record)

	log.Debug().Int64("id", record.ID).Int64("baby_id", b.ID).Msg("Growth record created")
	return success(c, "growth record created", record)
}
