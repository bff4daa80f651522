package graph

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"mymoney/internal/services"
)

// Resolver holds the services the schema resolves against.
type Resolver struct {
	Categories  *services.CategoryService
	Expenses    *services.ExpenseService
	Incomes     *services.IncomeService
	Investments *services.InvestmentService
	Settings    *services.SettingsService
	Dashboard   *services.DashboardService
}

// Argument and input-object field extraction. graphql-go hands both over as
// map[string]any with values already coerced by the scalar and enum types; a
// missing key means the caller omitted the field, which partial updates must
// distinguish from an explicit value.

// IDs cross the wire as opaque decimal digit strings. The ID scalar coerces
// both string and int input to the string form before it reaches here.
func idArg(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case string:
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			return id
		}
	case int:
		return int64(v)
	}
	return 0
}

func optIDArg(m map[string]any, key string) *int64 {
	switch v := m[key].(type) {
	case string:
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			return &id
		}
	case int:
		id := int64(v)
		return &id
	}
	return nil
}

func pageIntArg(m map[string]any, key string) *int {
	if v, ok := m[key].(int); ok {
		return &v
	}
	return nil
}

func stringArg(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func optStringArg(m map[string]any, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func boolArg(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func optBoolArg(m map[string]any, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

func decimalArg(m map[string]any, key string) decimal.Decimal {
	if v, ok := m[key].(decimal.Decimal); ok {
		return v
	}
	return decimal.Zero
}

func optDecimalArg(m map[string]any, key string) *decimal.Decimal {
	if v, ok := m[key].(decimal.Decimal); ok {
		return &v
	}
	return nil
}

func dateArg(m map[string]any, key string) time.Time {
	if v, ok := m[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}

func optDateArg(m map[string]any, key string) *time.Time {
	if v, ok := m[key].(time.Time); ok {
		return &v
	}
	return nil
}

func inputArg(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}
