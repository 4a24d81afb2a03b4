package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"lifeassist/date"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation. It only
// talks to the user and delegates work to the team.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal life assistant with a team of specialized assistants
			to help manage various aspects of the user's life.

			For financial tasks such as tracking expenses, generating financial reports,
			and managing monthly expense records, delegate the task to the Bookkeeper.
			For calendar-related tasks such as managing events, adding new events,
			listing upcoming events, and removing events, delegate the task to the Secretary.

			The experts are at your service and 100% dedicated to you, they keep context
			of your previous questions. Ensure you clearly specify the task and the
			relevant details when delegating.

			When asked to generate a report or summary, gather all necessary
			information from the relevant experts before providing a final response.
			If a task involves both financial and calendar aspects, coordinate
			between the Bookkeeper and the Secretary to complete it.

			Always confirm the successful completion of tasks and provide feedback
			or follow-up if needed.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// todaysDate is shared by every expert that needs to resolve relative dates.
var todaysDate = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "todays_date",
		Description: "Returns today's date, to resolve relative expressions like 'this month' or 'next Tuesday'.",
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Today's date in YYYY-MM-DD format.",
		},
	},
	Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
		return output(id, "todays_date", time.Now().Format("2006-01-02"))
	},
}

// ARGUMENT HELPERS
//
// Function call arguments come in as map[string]any decoded from JSON, so
// numbers may be float64 and everything needs a type check.

func strArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing argument %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string but %T", key, v)
	}
	return s, nil
}

func optStrArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string but %T", key, v)
	}
	return s, nil
}

func amountArg(args map[string]any, key string) (decimal.Decimal, error) {
	v, ok := args[key]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("missing argument %q", key)
	}
	switch a := v.(type) {
	case float64:
		return decimal.NewFromFloat(a), nil
	case string:
		d, err := decimal.NewFromString(a)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("argument %q is not a valid amount: %w", key, err)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("argument %q is not a number but %T", key, v)
	}
}

// monthArg reads an optional YYYY-MM month argument. Absent means the
// unspecified month, which the engine resolves to the current one.
func monthArg(args map[string]any, key string) (date.Month, error) {
	s, err := optStrArg(args, key)
	if err != nil || s == "" {
		return date.Month{}, err
	}
	m, err := date.ParseMonth(s)
	if err != nil {
		return date.Month{}, fmt.Errorf("argument %q must be a YYYY-MM month: %w", key, err)
	}
	return m, nil
}
