package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbud/internal/types"
)

func formData(t *testing.T, v View) types.TripRequest {
	t.Helper()
	f, ok := v.(FormStage)
	require.True(t, ok, "expected form stage, got %s", v.Kind())
	return f.Data
}

func TestNewViewDefaults(t *testing.T) {
	v := NewView()
	data := formData(t, v)
	assert.Equal(t, "", data.City)
	assert.Empty(t, data.Interests)
	assert.Equal(t, 3, data.Duration)
	assert.Equal(t, types.BudgetMedium, data.Budget)
	assert.Equal(t, types.StyleBalanced, data.TravelStyle)
}

func TestToggleInterestIsInvolution(t *testing.T) {
	sequences := [][]string{
		{"food"},
		{"food", "culture"},
		{"nightlife", "food", "adventure", "shopping"},
	}
	for _, seq := range sequences {
		v := NewView()
		var err error
		for _, id := range seq {
			v, err = ToggleInterest(v, id)
			require.NoError(t, err)
		}
		before := formData(t, v).Interests

		for _, id := range []string{"food", "nature"} {
			once, err := ToggleInterest(v, id)
			require.NoError(t, err)
			twice, err := ToggleInterest(once, id)
			require.NoError(t, err)
			assert.ElementsMatch(t, before, formData(t, twice).Interests, "sequence %v, toggled %s", seq, id)
		}
	}
}

func TestToggleInterestKeepsInsertionOrder(t *testing.T) {
	v := NewView()
	for _, id := range []string{"shopping", "food", "culture"} {
		v, _ = ToggleInterest(v, id)
	}
	v, _ = ToggleInterest(v, "food")
	assert.Equal(t, []string{"shopping", "culture"}, formData(t, v).Interests)
}

func TestToggleInterestRejectsUnknown(t *testing.T) {
	v := NewView()
	next, err := ToggleInterest(v, "activity")
	assert.ErrorIs(t, err, ErrUnknownInterest)
	assert.Empty(t, formData(t, next).Interests)
}

func TestToggleDoesNotAliasPreviousView(t *testing.T) {
	v, _ := ToggleInterest(NewView(), "food")
	_, _ = ToggleInterest(v, "culture")
	assert.Equal(t, []string{"food"}, formData(t, v).Interests)
}

func TestSettersRejectInvalidOptions(t *testing.T) {
	v := NewView()
	_, err := SetDuration(v, 6)
	assert.ErrorIs(t, err, ErrInvalidOption)
	_, err = SetBudget(v, "cheap")
	assert.ErrorIs(t, err, ErrInvalidOption)
	_, err = SetTravelStyle(v, "slow")
	assert.ErrorIs(t, err, ErrInvalidOption)

	v, err = SetDuration(v, 14)
	require.NoError(t, err)
	v, err = SetBudget(v, types.BudgetLuxury)
	require.NoError(t, err)
	v, err = SetTravelStyle(v, types.StylePacked)
	require.NoError(t, err)
	v, err = SetCity(v, "Rome")
	require.NoError(t, err)

	data := formData(t, v)
	assert.Equal(t, 14, data.Duration)
	assert.Equal(t, types.BudgetLuxury, data.Budget)
	assert.Equal(t, types.StylePacked, data.TravelStyle)
	assert.Equal(t, "Rome", data.City)
}

func TestBeginSubmitValidation(t *testing.T) {
	v, _ := SetCity(NewView(), "Paris")
	next, _, ok, err := BeginSubmit(v)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, MsgNoInterests, next.(FormStage).Error)

	v, _ = ToggleInterest(NewView(), "food")
	next, _, ok, err = BeginSubmit(v)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, MsgNoCity, next.(FormStage).Error)
}

func TestBeginSubmitClearsErrorAndCapturesRequest(t *testing.T) {
	v := View(FormStage{Data: types.NewTripRequest(), Error: MsgRequestFailed})
	v, _ = SetCity(v, "  Paris ")
	v, _ = ToggleInterest(v, "food")
	next, req, ok, err := BeginSubmit(v)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, next.(FormStage).Error)
	assert.Equal(t, "Paris", req.City)
	assert.Equal(t, []string{"food"}, req.Interests)
}

func TestCompleteResetAndFail(t *testing.T) {
	v, _ := SetCity(NewView(), "Paris")
	v, _ = ToggleInterest(v, "culture")
	resp := types.TripRecommendationResponse{City: "Paris", Summary: "ok"}

	results := Complete(v, resp)
	require.Equal(t, StageResults, results.Kind())
	assert.Equal(t, resp, results.(ResultsStage).Response)

	_, err := ToggleInterest(results, "food")
	assert.True(t, errors.Is(err, ErrNotInForm))

	back := Reset(results)
	data := formData(t, back)
	assert.Equal(t, "Paris", data.City)
	assert.Equal(t, []string{"culture"}, data.Interests)
	assert.Empty(t, back.(FormStage).Error)

	failed := Fail(v)
	assert.Equal(t, MsgRequestFailed, failed.(FormStage).Error)
	assert.Equal(t, "Paris", formData(t, failed).City)

	assert.Equal(t, results, Fail(results))
	assert.Equal(t, v, Reset(v))
}
