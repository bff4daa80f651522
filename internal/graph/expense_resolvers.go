package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"mymoney/internal/core"
	"mymoney/internal/services"
)

func expenseFilterFromArgs(m map[string]any) core.ExpenseFilter {
	return core.ExpenseFilter{
		CategoryID:  optIDArg(m, "categoryId"),
		StartDate:   optDateArg(m, "startDate"),
		EndDate:     optDateArg(m, "endDate"),
		MinAmount:   optDecimalArg(m, "minAmount"),
		MaxAmount:   optDecimalArg(m, "maxAmount"),
		IsRecurring: optBoolArg(m, "isRecurring"),
		IsPaid:      optBoolArg(m, "isPaid"),
		Search:      optStringArg(m, "search"),
	}
}

func optRecurrenceArg(m map[string]any, key string) *core.RecurrenceRule {
	if v, ok := m[key].(core.RecurrenceRule); ok {
		return &v
	}
	return nil
}

func (r *Resolver) resolveExpenses(p graphql.ResolveParams) (any, error) {
	filter := expenseFilterFromArgs(inputArg(p.Args, "filter"))

	sortBy := core.SortByDate
	if v, ok := p.Args["sortBy"].(core.ExpenseSortField); ok {
		sortBy = v
	}
	dir := core.SortDesc
	if v, ok := p.Args["sortDirection"].(core.SortDirection); ok {
		dir = v
	}
	limit := services.DefaultExpensePageSize
	if v := pageIntArg(p.Args, "limit"); v != nil {
		limit = *v
	}
	offset := 0
	if v := pageIntArg(p.Args, "offset"); v != nil {
		offset = *v
	}

	items, total, hasMore, err := r.Expenses.List(p.Context, filter, sortBy, dir, limit, offset)
	if err != nil {
		return nil, err
	}
	return expensePage{Items: newExpenseModels(items), TotalCount: total, HasMore: hasMore}, nil
}

func (r *Resolver) resolveExpense(p graphql.ResolveParams) (any, error) {
	e, err := r.Expenses.Get(p.Context, idArg(p.Args, "id"))
	if err != nil || e == nil {
		return nil, err
	}
	return newExpenseModel(*e), nil
}

func (r *Resolver) resolveExpenseSummary(p graphql.ResolveParams) (any, error) {
	month := pageIntArg(p.Args, "month")
	year := pageIntArg(p.Args, "year")
	sum, err := r.Expenses.Summary(p.Context, month, year)
	if err != nil {
		return nil, err
	}
	return expenseSummaryModel{
		TotalAmount:  sum.TotalAmount,
		PaidAmount:   sum.PaidAmount,
		UnpaidAmount: sum.UnpaidAmount,
		TotalCount:   sum.TotalCount,
		PaidCount:    sum.PaidCount,
		UnpaidCount:  sum.UnpaidCount,
	}, nil
}

func (r *Resolver) resolveCreateExpense(p graphql.ResolveParams) (any, error) {
	in := inputArg(p.Args, "input")
	e, err := r.Expenses.Create(p.Context, core.NewExpense{
		Amount:         decimalArg(in, "amount"),
		Description:    stringArg(in, "description"),
		Notes:          optStringArg(in, "notes"),
		Date:           dateArg(in, "date"),
		CategoryID:     idArg(in, "categoryId"),
		IsRecurring:    boolArg(in, "isRecurring"),
		RecurrenceRule: optRecurrenceArg(in, "recurrenceRule"),
	})
	if err != nil {
		return nil, err
	}
	return newExpenseModel(*e), nil
}

func (r *Resolver) resolveUpdateExpense(p graphql.ResolveParams) (any, error) {
	id := idArg(p.Args, "id")
	in := inputArg(p.Args, "input")
	e, err := r.Expenses.Update(p.Context, id, core.ExpensePatch{
		Amount:         optDecimalArg(in, "amount"),
		Description:    optStringArg(in, "description"),
		Notes:          optStringArg(in, "notes"),
		Date:           optDateArg(in, "date"),
		CategoryID:     optIDArg(in, "categoryId"),
		IsRecurring:    optBoolArg(in, "isRecurring"),
		RecurrenceRule: optRecurrenceArg(in, "recurrenceRule"),
	})
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("expense with id %d not found", id)
	}
	return newExpenseModel(*e), nil
}

func (r *Resolver) resolveDeleteExpense(p graphql.ResolveParams) (any, error) {
	return r.Expenses.Delete(p.Context, idArg(p.Args, "id"))
}

func (r *Resolver) resolveMarkExpensePaid(p graphql.ResolveParams) (any, error) {
	id := idArg(p.Args, "id")
	e, err := r.Expenses.MarkPaid(p.Context, id, boolArg(p.Args, "paid"))
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("expense with id %d not found", id)
	}
	return newExpenseModel(*e), nil
}
