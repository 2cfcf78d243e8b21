// README: Planner view state: a Form or Results stage with pure transitions.
package planner

import (
	"errors"
	"strings"

	"tripbud/internal/types"
)

var (
	ErrUnknownInterest = errors.New("unknown interest")
	ErrInvalidOption   = errors.New("invalid option")
	ErrNotInForm       = errors.New("view is not in the form stage")
	ErrSubmitInFlight  = errors.New("a submission is already in flight")
)

// User-facing messages.
const (
	MsgNoInterests   = "Please select at least one interest"
	MsgNoCity        = "Please enter a destination city"
	MsgRequestFailed = "Failed to get recommendations. Please try again."
)

// StageKind names the active stage of a View.
type StageKind string

const (
	StageForm    StageKind = "form"
	StageResults StageKind = "results"
)

// View is either a FormStage or a ResultsStage. The unexported method keeps
// the set closed.
type View interface {
	Kind() StageKind
	// Form returns the form values held by the stage.
	Form() types.TripRequest
	isView()
}

// FormStage collects input. Error is empty when there is nothing to show.
type FormStage struct {
	Data  types.TripRequest
	Error string
}

// ResultsStage shows a response. Data keeps the form values for Reset.
type ResultsStage struct {
	Data     types.TripRequest
	Response types.TripRecommendationResponse
}

func (FormStage) Kind() StageKind    { return StageForm }
func (ResultsStage) Kind() StageKind { return StageResults }

func (s FormStage) Form() types.TripRequest    { return s.Data }
func (s ResultsStage) Form() types.TripRequest { return s.Data }

func (FormStage) isView()    {}
func (ResultsStage) isView() {}

// NewView returns the initial view of a fresh page.
func NewView() View {
	return FormStage{Data: types.NewTripRequest()}
}

func formOf(v View) (FormStage, error) {
	f, ok := v.(FormStage)
	if !ok {
		return FormStage{}, ErrNotInForm
	}
	f.Data = f.Data.Clone()
	return f, nil
}

// ToggleInterest adds id to the selection when absent and removes it when
// present. Selection order is insertion order.
func ToggleInterest(v View, id string) (View, error) {
	f, err := formOf(v)
	if err != nil {
		return v, err
	}
	if !types.IsInterest(id) {
		return v, ErrUnknownInterest
	}
	for i, cur := range f.Data.Interests {
		if cur == id {
			f.Data.Interests = append(f.Data.Interests[:i], f.Data.Interests[i+1:]...)
			return f, nil
		}
	}
	f.Data.Interests = append(f.Data.Interests, id)
	return f, nil
}

func SetCity(v View, city string) (View, error) {
	f, err := formOf(v)
	if err != nil {
		return v, err
	}
	f.Data.City = city
	return f, nil
}

func SetDuration(v View, days int) (View, error) {
	f, err := formOf(v)
	if err != nil {
		return v, err
	}
	if !types.IsDuration(days) {
		return v, ErrInvalidOption
	}
	f.Data.Duration = days
	return f, nil
}

func SetBudget(v View, b types.Budget) (View, error) {
	f, err := formOf(v)
	if err != nil {
		return v, err
	}
	if !b.Valid() {
		return v, ErrInvalidOption
	}
	f.Data.Budget = b
	return f, nil
}

func SetTravelStyle(v View, s types.TravelStyle) (View, error) {
	f, err := formOf(v)
	if err != nil {
		return v, err
	}
	if !s.Valid() {
		return v, ErrInvalidOption
	}
	f.Data.TravelStyle = s
	return f, nil
}

// BeginSubmit runs the presence checks. When they pass, the returned view has
// its error cleared and ok is true; req is the payload to send. When they
// fail, the returned view carries the validation message and ok is false.
func BeginSubmit(v View) (next View, req types.TripRequest, ok bool, err error) {
	f, err := formOf(v)
	if err != nil {
		return v, types.TripRequest{}, false, err
	}
	switch {
	case len(f.Data.Interests) == 0:
		f.Error = MsgNoInterests
		return f, types.TripRequest{}, false, nil
	case strings.TrimSpace(f.Data.City) == "":
		f.Error = MsgNoCity
		return f, types.TripRequest{}, false, nil
	}
	f.Error = ""
	req = f.Data.Clone()
	req.City = strings.TrimSpace(req.City)
	return f, req, true, nil
}

// Complete moves a form to results. Any other stage is returned unchanged.
func Complete(v View, resp types.TripRecommendationResponse) View {
	f, err := formOf(v)
	if err != nil {
		return v
	}
	return ResultsStage{Data: f.Data, Response: resp}
}

// Fail keeps the form and its values, showing the generic request error.
func Fail(v View) View {
	f, err := formOf(v)
	if err != nil {
		return v
	}
	f.Error = MsgRequestFailed
	return f
}

// Reset discards the response and returns to the form with the previous
// values. A form is returned unchanged.
func Reset(v View) View {
	r, ok := v.(ResultsStage)
	if !ok {
		return v
	}
	return FormStage{Data: r.Data.Clone()}
}
