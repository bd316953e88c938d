package walkthrough

import "gitlab.com/adam.stanek/growthwalk/pkg/baby"

// Scenario - data sent during the walkthrough
// Identifiers (family id, baby id) are filled in from the responses while running.
type Scenario struct {
	Account baby.RegisterRequest
	Family  baby.FamilyCreateRequest
	Baby    baby.BabyCreateRequest
	Record  baby.GrowthRecordCreateRequest
}

// DefaultScenario - test user, family, baby and diary entry
func DefaultScenario() Scenario {
	return Scenario{
		Account: baby.RegisterRequest{
			Username: "newuser789",
			Password: "test123456",
			Email:    "test@example.com",
			Nickname: "Test User",
		},
		Family: baby.FamilyCreateRequest{
			Name:        "Test Family",
			Description: "A test family for growth records",
		},
		Baby: baby.BabyCreateRequest{
			Name:        "Test Baby",
			Gender:      baby.GenderMale,
			Birthday:    "2023-01-01",
			Description: "A test baby for growth records",
		},
		Record: baby.GrowthRecordCreateRequest{
			Type:      baby.RecordTypeDiary,
			Title:     "First Growth Record",
			Content:   "This is a test growth record.",
			MediaURLs: []string{},
			Tags:      []string{"test", "first"},
		},
	}
}

func (s Scenario) login() baby.LoginRequest {
	return baby.LoginRequest{
		Username: s.Account.Username,
		Password: s.Account.Password,
	}
}
