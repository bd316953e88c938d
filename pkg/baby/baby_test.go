package baby_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/adam.stanek/growthwalk/pkg/baby"
)

func TestGrowthRecordEmptyLists(t *testing.T) {
	r := baby.GrowthRecordCreateRequest{
		BabyID: json.RawMessage("7"),
		Type:   baby.RecordTypeDiary,
		Title:  "First Growth Record",
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"babyId": 7,
		"type": "DIARY",
		"title": "First Growth Record",
		"content": "",
		"mediaUrls": [],
		"tags": []
	}`, string(data))
}

func TestGrowthRecordKeepsTagOrder(t *testing.T) {
	r := baby.GrowthRecordCreateRequest{
		BabyID: json.RawMessage(`"b-1"`),
		Tags:   []string{"test", "first"},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "b-1", decoded["babyId"])
	assert.Equal(t, []interface{}{"test", "first"}, decoded["tags"])
}

func TestBabyRequestCarriesRawFamilyID(t *testing.T) {
	r := baby.BabyCreateRequest{
		FamilyID: json.RawMessage("42"),
		Name:     "Test Baby",
		Gender:   baby.GenderMale,
		Birthday: "2023-01-01",
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"familyId":42`)
}
