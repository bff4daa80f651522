package graph

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"

	"mymoney/internal/services"
	"mymoney/internal/storage"
)

func newTestSchema(t *testing.T) graphql.Schema {
	t.Helper()
	store, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	expenses := services.NewExpenseService(store)
	incomes := services.NewIncomeService(store)
	investments := services.NewInvestmentService(store)
	r := &Resolver{
		Categories:  services.NewCategoryService(store),
		Expenses:    expenses,
		Incomes:     incomes,
		Investments: investments,
		Settings:    services.NewSettingsService(store),
		Dashboard:   services.NewDashboardService(expenses, incomes, investments),
	}
	schema, err := NewSchema(r)
	if err != nil {
		t.Fatalf("build schema: %v", err)
	}
	return schema
}

// exec runs a query and fails the test on resolver errors.
func exec(t *testing.T, schema graphql.Schema, query string) map[string]any {
	t.Helper()
	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       context.Background(),
	})
	if len(result.Errors) > 0 {
		t.Fatalf("query failed: %v\nquery: %s", result.Errors, query)
	}
	return result.Data.(map[string]any)
}

// execErr runs a query expecting at least one error.
func execErr(t *testing.T, schema graphql.Schema, query string) string {
	t.Helper()
	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       context.Background(),
	})
	if len(result.Errors) == 0 {
		t.Fatalf("query unexpectedly succeeded: %s", query)
	}
	return result.Errors[0].Message
}

func jsonNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	}
	return 0
}

func TestCategoryRoundTrip(t *testing.T) {
	schema := newTestSchema(t)

	data := exec(t, schema, `mutation {
		createCategory(input: {name: "Groceries", icon: "cart"}) { id name color icon }
	}`)
	created := data["createCategory"].(map[string]any)
	if created["name"] != "Groceries" {
		t.Errorf("name = %v", created["name"])
	}
	if created["color"] != "#6B7280" {
		t.Errorf("default color = %v, want #6B7280", created["color"])
	}

	data = exec(t, schema, `{ categories { name } }`)
	cats := data["categories"].([]any)
	if len(cats) != 1 {
		t.Fatalf("categories = %v", cats)
	}

	data = exec(t, schema, `{ category(id: 999) { id } }`)
	if data["category"] != nil {
		t.Errorf("missing category = %v, want null", data["category"])
	}
}

func TestIDsAreOpaqueStrings(t *testing.T) {
	schema := newTestSchema(t)

	exec(t, schema, `mutation { createCategory(input: {name: "Transport"}) { id } }`)

	// String-form arguments resolve the same row as int literals.
	data := exec(t, schema, `{ category(id: "1") { id name } }`)
	cat := data["category"].(map[string]any)
	if cat["name"] != "Transport" {
		t.Fatalf("category(id: \"1\") = %v", cat)
	}
	if cat["id"] != "1" {
		t.Errorf("id serialized as %v (%T), want the string \"1\"", cat["id"], cat["id"])
	}

	data = exec(t, schema, `mutation { updateCategory(id: "1", input: {name: "Travel"}) { name } }`)
	if data["updateCategory"].(map[string]any)["name"] != "Travel" {
		t.Errorf("updateCategory = %v", data["updateCategory"])
	}

	data = exec(t, schema, `mutation { deleteCategory(id: "1") }`)
	if data["deleteCategory"] != true {
		t.Errorf("deleteCategory(id: \"1\") = %v", data["deleteCategory"])
	}
}

func TestExpenseMutationsAndQueries(t *testing.T) {
	schema := newTestSchema(t)

	exec(t, schema, `mutation { createCategory(input: {name: "Food"}) { id } }`)

	data := exec(t, schema, `mutation {
		createExpense(input: {
			amount: "42.50", description: "Weekly shop", date: "2025-03-01",
			categoryId: 1, isRecurring: true, recurrenceRule: WEEKLY
		}) { id amount description isRecurring recurrenceRule isPaid category { name } }
	}`)
	created := data["createExpense"].(map[string]any)
	if created["amount"] != "42.5" {
		t.Errorf("amount = %v, want 42.5", created["amount"])
	}
	if created["recurrenceRule"] != "WEEKLY" {
		t.Errorf("recurrenceRule = %v", created["recurrenceRule"])
	}
	if created["isPaid"] != false {
		t.Errorf("new expense already paid")
	}
	if created["category"].(map[string]any)["name"] != "Food" {
		t.Errorf("joined category = %v", created["category"])
	}

	// Partial update keeps untouched fields.
	data = exec(t, schema, `mutation {
		updateExpense(id: 1, input: {amount: "50"}) { amount description }
	}`)
	updated := data["updateExpense"].(map[string]any)
	if updated["amount"] != "50" || updated["description"] != "Weekly shop" {
		t.Errorf("updated = %v", updated)
	}

	msg := execErr(t, schema, `mutation { updateExpense(id: 999, input: {amount: "1"}) { id } }`)
	if !strings.Contains(msg, "not found") {
		t.Errorf("error = %q, want not found", msg)
	}

	data = exec(t, schema, `mutation { markExpensePaid(id: 1, paid: true) { isPaid paidAt } }`)
	paid := data["markExpensePaid"].(map[string]any)
	if paid["isPaid"] != true || paid["paidAt"] == nil {
		t.Errorf("markExpensePaid = %v", paid)
	}

	data = exec(t, schema, `{
		expenses(filter: {search: "weekly"}) { totalCount hasMore items { description } }
	}`)
	page := data["expenses"].(map[string]any)
	if jsonNumber(page["totalCount"]) != 1 || page["hasMore"] != false {
		t.Errorf("page = %v", page)
	}

	// Delete is a boolean, not an error, when the row is gone.
	data = exec(t, schema, `mutation { deleteExpense(id: 1) }`)
	if data["deleteExpense"] != true {
		t.Errorf("first delete = %v", data["deleteExpense"])
	}
	data = exec(t, schema, `mutation { deleteExpense(id: 1) }`)
	if data["deleteExpense"] != false {
		t.Errorf("second delete = %v", data["deleteExpense"])
	}
}

func TestExpenseSummaryQuery(t *testing.T) {
	schema := newTestSchema(t)

	exec(t, schema, `mutation { createCategory(input: {name: "Bills"}) { id } }`)
	exec(t, schema, `mutation { createExpense(input: {amount: "100", description: "Rent", date: "2025-03-01", categoryId: 1}) { id } }`)
	exec(t, schema, `mutation { createExpense(input: {amount: "40", description: "Power", date: "2025-03-10", categoryId: 1}) { id } }`)
	exec(t, schema, `mutation { markExpensePaid(id: 1, paid: true) { id } }`)

	data := exec(t, schema, `{
		expenseSummary(month: 3, year: 2025) {
			totalAmount paidAmount unpaidAmount totalCount paidCount unpaidCount
		}
	}`)
	sum := data["expenseSummary"].(map[string]any)
	if sum["totalAmount"] != "140" || sum["paidAmount"] != "100" || sum["unpaidAmount"] != "40" {
		t.Errorf("summary amounts = %v", sum)
	}
	if jsonNumber(sum["totalCount"]) != 2 || jsonNumber(sum["paidCount"]) != 1 {
		t.Errorf("summary counts = %v", sum)
	}
}

func TestIncomeNetAmountField(t *testing.T) {
	schema := newTestSchema(t)

	data := exec(t, schema, `mutation {
		createIncome(input: {
			name: "Contract", amount: "1000", incomeType: FREELANCE,
			isGross: true, taxRate: "27.5", otherFees: "50"
		}) { amount netAmount incomeType isActive currency }
	}`)
	created := data["createIncome"].(map[string]any)
	if created["netAmount"] != "675" {
		t.Errorf("netAmount = %v, want 675", created["netAmount"])
	}
	if created["incomeType"] != "FREELANCE" {
		t.Errorf("incomeType = %v", created["incomeType"])
	}
	if created["isActive"] != true {
		t.Errorf("isActive defaulted to %v, want true", created["isActive"])
	}
	if created["currency"] != "USD" {
		t.Errorf("currency = %v, want USD", created["currency"])
	}

	data = exec(t, schema, `{ incomes(isActive: true) { totalCount items { name } } }`)
	page := data["incomes"].(map[string]any)
	if jsonNumber(page["totalCount"]) != 1 {
		t.Errorf("incomes = %v", page)
	}
}

func TestIncomeGrossDefaultsTrue(t *testing.T) {
	schema := newTestSchema(t)

	data := exec(t, schema, `mutation {
		createIncome(input: {name: "Job", amount: "100", incomeType: SALARY}) { isGross netAmount }
	}`)
	created := data["createIncome"].(map[string]any)
	if created["isGross"] != true {
		t.Errorf("isGross = %v, want true when omitted", created["isGross"])
	}
	if created["netAmount"] != "100" {
		t.Errorf("netAmount = %v, want 100 without deductions", created["netAmount"])
	}
}

func TestPortfolioValuationFields(t *testing.T) {
	schema := newTestSchema(t)

	exec(t, schema, `mutation { createPortfolio(input: {name: "Main"}) { id } }`)
	exec(t, schema, `mutation {
		createAsset(input: {
			portfolioId: 1, symbol: "VTI", name: "Total Market", assetType: STOCK,
			quantity: "10", purchasePrice: "100", purchaseDate: "2024-06-01", currentPrice: "120"
		}) { id }
	}`)
	exec(t, schema, `mutation {
		createAsset(input: {
			portfolioId: 1, symbol: "BTC", name: "Bitcoin", assetType: CRYPTO,
			quantity: "0.01", purchasePrice: "30000", purchaseDate: "2024-06-01"
		}) { id }
	}`)

	data := exec(t, schema, `{
		portfolio(id: 1) {
			totalValue totalCost totalGainLoss totalGainLossPercent
			assets { symbol totalCost currentValue gainLoss gainLossPercent }
		}
	}`)
	pf := data["portfolio"].(map[string]any)
	if pf["totalValue"] != "1500" || pf["totalCost"] != "1300" || pf["totalGainLoss"] != "200" {
		t.Errorf("portfolio totals = %v", pf)
	}

	assets := pf["assets"].([]any)
	vti := assets[0].(map[string]any)
	if vti["currentValue"] != "1200" || vti["gainLoss"] != "200" || vti["gainLossPercent"] != "20" {
		t.Errorf("priced asset = %v", vti)
	}
	btc := assets[1].(map[string]any)
	if btc["currentValue"] != nil || btc["gainLoss"] != nil {
		t.Errorf("unpriced asset valuation = %v", btc)
	}
	if btc["totalCost"] != "300" {
		t.Errorf("unpriced asset cost = %v, want 300", btc["totalCost"])
	}

	data = exec(t, schema, `mutation { updateAssetPrice(id: 2, currentPrice: "35000") { currentValue } }`)
	repriced := data["updateAssetPrice"].(map[string]any)
	if repriced["currentValue"] != "350" {
		t.Errorf("repriced currentValue = %v, want 350", repriced["currentValue"])
	}
}

func TestPortfolioGainLossPercentNeverNull(t *testing.T) {
	schema := newTestSchema(t)

	exec(t, schema, `mutation { createPortfolio(input: {name: "Empty"}) { id } }`)

	// No assets, no cost; the percent is still a zero, not a null.
	data := exec(t, schema, `{ portfolios { totalGainLossPercent } }`)
	pfs := data["portfolios"].([]any)
	if len(pfs) != 1 {
		t.Fatalf("portfolios = %v", pfs)
	}
	if got := pfs[0].(map[string]any)["totalGainLossPercent"]; got != "0" {
		t.Errorf("totalGainLossPercent = %v, want 0", got)
	}
}

func TestDashboardQuery(t *testing.T) {
	schema := newTestSchema(t)

	exec(t, schema, `mutation { createCategory(input: {name: "Misc"}) { id } }`)
	exec(t, schema, `mutation { createExpense(input: {amount: "40", description: "a", date: "2025-03-10", categoryId: 1}) { id } }`)
	exec(t, schema, `mutation { createExpense(input: {amount: "100", description: "b", date: "2025-02-10", categoryId: 1}) { id } }`)

	data := exec(t, schema, `{
		dashboard(month: "2025-03") {
			totalExpensesThisMonth
			totalExpensesLastMonth
			expenseChangePercent
			netWorth
			monthlyExpenseTrend { month totalAmount }
			topCategories { category { name } totalAmount percentage }
		}
	}`)
	dash := data["dashboard"].(map[string]any)
	if dash["totalExpensesThisMonth"] != "40" || dash["totalExpensesLastMonth"] != "100" {
		t.Errorf("totals = %v", dash)
	}
	if dash["expenseChangePercent"] != "-60" {
		t.Errorf("expenseChangePercent = %v, want -60", dash["expenseChangePercent"])
	}
	if dash["netWorth"] != "0" {
		t.Errorf("netWorth = %v, want 0", dash["netWorth"])
	}

	trend := dash["monthlyExpenseTrend"].([]any)
	if len(trend) != 6 {
		t.Fatalf("trend length = %d", len(trend))
	}
	last := trend[5].(map[string]any)
	if last["month"] != "2025-03" || last["totalAmount"] != "40" {
		t.Errorf("trend[5] = %v", last)
	}

	top := dash["topCategories"].([]any)
	if len(top) != 1 {
		t.Fatalf("topCategories = %v", top)
	}
	if top[0].(map[string]any)["percentage"] != "100" {
		t.Errorf("top percentage = %v, want 100", top[0])
	}
}

func TestSettingsQueriesAndValidation(t *testing.T) {
	schema := newTestSchema(t)

	data := exec(t, schema, `{ settings { id mainCurrency language } }`)
	settings := data["settings"].(map[string]any)
	if settings["id"] != "1" || settings["mainCurrency"] != "USD" {
		t.Errorf("settings = %v", settings)
	}

	data = exec(t, schema, `mutation {
		updateSettings(input: {mainCurrency: "EUR"}) { mainCurrency language }
	}`)
	updated := data["updateSettings"].(map[string]any)
	if updated["mainCurrency"] != "EUR" || updated["language"] != "en" {
		t.Errorf("updated settings = %v", updated)
	}

	msg := execErr(t, schema, `mutation { updateSettings(input: {mainCurrency: "XXX"}) { id } }`)
	if !strings.Contains(msg, "invalid currency code") {
		t.Errorf("error = %q", msg)
	}

	data = exec(t, schema, `{ supportedCurrencies { code symbol } supportedLanguages { code nativeName } }`)
	if got := len(data["supportedCurrencies"].([]any)); got != 10 {
		t.Errorf("supportedCurrencies = %d entries, want 10", got)
	}
	if got := len(data["supportedLanguages"].([]any)); got != 2 {
		t.Errorf("supportedLanguages = %d entries, want 2", got)
	}
}

func TestValidationErrorsSurface(t *testing.T) {
	schema := newTestSchema(t)

	msg := execErr(t, schema, `mutation {
		createCategory(input: {name: "Bad", color: "nope"}) { id }
	}`)
	if !strings.Contains(msg, "validation failed") {
		t.Errorf("error = %q", msg)
	}
}
