package agent

import (
	"context"

	"google.golang.org/genai"

	"lifeassist"
	"lifeassist/docs"
	"lifeassist/tracker"
)

// NewBookkeeper creates the expert in charge of the expense ledger. Every
// tool maps to an engine operation; the engine reports outcomes as messages,
// so tools never fail once their arguments parse.
func NewBookkeeper(e *tracker.Engine) *Expert {
	lib := []Function{
		addExpense(e),
		listExpenses(e),
		summarizeExpenses(e),
		deleteExpense(e),
		updateExpense(e),
		monthlyReport(e),
		createMonthlyFile(e),
		runTableOperation(e),
		loadFrame(e),
		runFrameOperation(e),
		todaysDate,
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `The Bookkeeper manages the user's finances. It can add new expenses,
		list expenses, summarize expenses by category, delete expenses, update expenses,
		generate financial reports, and run ad-hoc queries on expense records or CSV files.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a finance assistant responsible for managing financial tasks.
			You can add new expenses, list expenses, summarize expenses by category,
			delete expenses, update expenses, and generate financial reports.

			Ensure that all expenses are categorized correctly based on the predefined
			categories:

			` + must(docs.GetTopic("categories")) + `

			When asked to generate a financial report, provide a detailed summary of
			expenses for the specified period. Months are identified as follows:

			` + must(docs.GetTopic("months")) + `

			The tools report their outcome as a plain message: relay errors to the
			caller instead of retrying blindly.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// monthProperty documents the optional month argument shared by most tools.
func monthProperty() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeString,
		Description: "The YYYY-MM month to operate on. The current month is the default.",
	}
}

func addExpense(e *tracker.Engine) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "add_expense",
			Description: "Records a new expense for today in the current month's records.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"amount":      {Type: genai.TypeNumber, Description: "The amount spent."},
					"category":    {Type: genai.TypeString, Description: "The expense category, one of the predefined ones."},
					"description": {Type: genai.TypeString, Description: "A short free-text description of the expense."},
				},
				Required: []string{"amount", "category", "description"},
			},
			Response: outcomeSchema(),
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			amount, err := amountArg(args, "amount")
			if err != nil {
				return failure(id, "add_expense", err)
			}
			category, err := strArg(args, "category")
			if err != nil {
				return failure(id, "add_expense", err)
			}
			description, err := strArg(args, "description")
			if err != nil {
				return failure(id, "add_expense", err)
			}
			return output(id, "add_expense", e.AddExpense(amount, category, description))
		},
	}
}

func listExpenses(e *tracker.Engine) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "list_expenses",
			Description: "Lists all recorded expenses for a month as a markdown table.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": monthProperty(),
				},
			},
			Response: outcomeSchema(),
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			m, err := monthArg(args, "month")
			if err != nil {
				return failure(id, "list_expenses", err)
			}
			return output(id, "list_expenses", e.ListExpenses(m))
		},
	}
}

func summarizeExpenses(e *tracker.Engine) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "summarize_expenses",
			Description: "Summarizes a month's expenses by category, with a total per category.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": monthProperty(),
				},
			},
			Response: outcomeSchema(),
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			m, err := monthArg(args, "month")
			if err != nil {
				return failure(id, "summarize_expenses", err)
			}
			return output(id, "summarize_expenses", e.SummarizeExpenses(m))
		},
	}
}

func deleteExpense(e *tracker.Engine) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "delete_expense",
			Description: "Deletes every expense whose description matches exactly.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"description": {Type: genai.TypeString, Description: "The exact description of the expense(s) to delete."},
					"month":       monthProperty(),
				},
				Required: []string{"description"},
			},
			Response: outcomeSchema(),
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			description, err := strArg(args, "description")
			if err != nil {
				return failure(id, "delete_expense", err)
			}
			m, err := monthArg(args, "month")
			if err != nil {
				return failure(id, "delete_expense", err)
			}
			return output(id, "delete_expense", e.DeleteExpense(description, m))
		},
	}
}

func updateExpense(e *tracker.Engine) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "update_expense",
			Description: `Updates every expense whose description matches exactly, replacing
			its amount, category and description.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"description":     {Type: genai.TypeString, Description: "The exact description of the expense(s) to update."},
					"amount":          {Type: genai.TypeNumber, Description: "The new amount."},
					"category":        {Type: genai.TypeString, Description: "The new category, one of the predefined ones."},
					"new_description": {Type: genai.TypeString, Description: "The new description."},
					"month":           monthProperty(),
				},
				Required: []string{"description", "amount", "category", "new_description"},
			},
			Response: outcomeSchema(),
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			description, err := strArg(args, "description")
			if err != nil {
				return failure(id, "update_expense", err)
			}
			amount, err := amountArg(args, "amount")
			if err != nil {
				return failure(id, "update_expense", err)
			}
			category, err := strArg(args, "category")
			if err != nil {
				return failure(id, "update_expense", err)
			}
			newDescription, err := strArg(args, "new_description")
			if err != nil {
				return failure(id, "update_expense", err)
			}
			m, err := monthArg(args, "month")
			if err != nil {
				return failure(id, "update_expense", err)
			}
			return output(id, "update_expense", e.UpdateExpense(description, amount, category, newDescription, m))
		},
	}
}

func monthlyReport(e *tracker.Engine) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "generate_monthly_report",
			Description: "Generates a financial report for a month: total expenses and a breakdown by category.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": {Type: genai.TypeString, Description: "The YYYY-MM month to report on."},
				},
				Required: []string{"month"},
			},
			Response: outcomeSchema(),
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			m, err := monthArg(args, "month")
			if err != nil {
				return failure(id, "generate_monthly_report", err)
			}
			return output(id, "generate_monthly_report", e.MonthlyReport(m))
		},
	}
}

func createMonthlyFile(e *tracker.Engine) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "create_monthly_expense_file",
			Description: "Creates the expense records file for a month if it does not exist yet.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": {Type: genai.TypeString, Description: "The YYYY-MM month to create records for."},
				},
				Required: []string{"month"},
			},
			Response: outcomeSchema(),
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			m, err := monthArg(args, "month")
			if err != nil {
				return failure(id, "create_monthly_expense_file", err)
			}
			return output(id, "create_monthly_expense_file", e.CreateMonthlyFile(m))
		},
	}
}

// paramKeys are the query parameters forwarded to table operations.
var paramKeys = []string{"column", "equals", "contains", "description_contains", "sum_column", "by", "desc", "n", "path"}

func paramProperties() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"column":               {Type: genai.TypeString, Description: "Column to filter on (default 'description')."},
		"equals":               {Type: genai.TypeString, Description: "Keep rows whose column equals this value."},
		"contains":             {Type: genai.TypeString, Description: "Keep rows whose column contains this value."},
		"description_contains": {Type: genai.TypeString, Description: "Shorthand: keep rows whose description contains this value."},
		"sum_column":           {Type: genai.TypeString, Description: "Numeric column to sum (default 'amount')."},
		"by":                   {Type: genai.TypeString, Description: "Column to group or sort by."},
		"desc":                 {Type: genai.TypeBoolean, Description: "Sort in descending order."},
		"n":                    {Type: genai.TypeInteger, Description: "Number of rows for head/tail (default 5)."},
		"path":                 {Type: genai.TypeString, Description: "JSONPath expression for the jsonpath operation."},
	}
}

func collectParams(args map[string]any) lifeassist.Params {
	params := lifeassist.Params{}
	for _, key := range paramKeys {
		if v, ok := args[key]; ok {
			params[key] = v
		}
	}
	return params
}

func runTableOperation(e *tracker.Engine) *Func {
	properties := paramProperties()
	properties["month"] = monthProperty()
	properties["operation"] = &genai.Schema{
		Type:        genai.TypeString,
		Description: "The operation to run. The available operations are documented below:\n\n" + must(docs.GetTopic("operations")),
	}

	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "run_table_operation",
			Description: "Runs an ad-hoc query operation against a month's expense records.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: properties,
				Required:   []string{"operation"},
			},
			Response: outcomeSchema(),
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			name, err := strArg(args, "operation")
			if err != nil {
				return failure(id, "run_table_operation", err)
			}
			m, err := monthArg(args, "month")
			if err != nil {
				return failure(id, "run_table_operation", err)
			}
			return output(id, "run_table_operation", e.RunTableOperation(m, name, collectParams(args)))
		},
	}
}

func loadFrame(e *tracker.Engine) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "load_csv_frame",
			Description: "Loads a CSV file into a named in-memory frame for later queries.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"path": {Type: genai.TypeString, Description: "Filesystem path of the CSV file to load."},
					"name": {Type: genai.TypeString, Description: "The name under which to register the frame."},
				},
				Required: []string{"path", "name"},
			},
			Response: outcomeSchema(),
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			path, err := strArg(args, "path")
			if err != nil {
				return failure(id, "load_csv_frame", err)
			}
			name, err := strArg(args, "name")
			if err != nil {
				return failure(id, "load_csv_frame", err)
			}
			return output(id, "load_csv_frame", e.LoadFrame(path, name))
		},
	}
}

func runFrameOperation(e *tracker.Engine) *Func {
	properties := paramProperties()
	properties["name"] = &genai.Schema{Type: genai.TypeString, Description: "The name of a previously loaded frame."}
	properties["operation"] = &genai.Schema{Type: genai.TypeString, Description: "The operation to run, same set as run_table_operation."}

	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "run_frame_operation",
			Description: "Runs an ad-hoc query operation against a previously loaded CSV frame.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: properties,
				Required:   []string{"name", "operation"},
			},
			Response: outcomeSchema(),
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			name, err := strArg(args, "name")
			if err != nil {
				return failure(id, "run_frame_operation", err)
			}
			op, err := strArg(args, "operation")
			if err != nil {
				return failure(id, "run_frame_operation", err)
			}
			return output(id, "run_frame_operation", e.RunFrameOperation(name, op, collectParams(args)))
		},
	}
}

func outcomeSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeString,
		Description: "A plain-text outcome message, or a markdown table for listing operations.",
	}
}
