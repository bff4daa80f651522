package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"mymoney/internal/core"
	"mymoney/internal/services"
)

func optIncomeTypeArg(m map[string]any, key string) *core.IncomeType {
	if v, ok := m[key].(core.IncomeType); ok {
		return &v
	}
	return nil
}

func (r *Resolver) resolveIncomes(p graphql.ResolveParams) (any, error) {
	limit := services.DefaultIncomePageSize
	if v := pageIntArg(p.Args, "limit"); v != nil {
		limit = *v
	}
	offset := 0
	if v := pageIntArg(p.Args, "offset"); v != nil {
		offset = *v
	}

	items, total, hasMore, err := r.Incomes.List(p.Context, optBoolArg(p.Args, "isActive"), limit, offset)
	if err != nil {
		return nil, err
	}
	models := make([]incomeModel, len(items))
	for i, inc := range items {
		models[i] = newIncomeModel(inc)
	}
	return incomePage{Items: models, TotalCount: total, HasMore: hasMore}, nil
}

func (r *Resolver) resolveIncome(p graphql.ResolveParams) (any, error) {
	i, err := r.Incomes.Get(p.Context, idArg(p.Args, "id"))
	if err != nil || i == nil {
		return nil, err
	}
	return newIncomeModel(*i), nil
}

func (r *Resolver) resolveCreateIncome(p graphql.ResolveParams) (any, error) {
	in := inputArg(p.Args, "input")
	isActive := true
	if v := optBoolArg(in, "isActive"); v != nil {
		isActive = *v
	}
	// Incomes are gross unless the caller says otherwise.
	isGross := true
	if v := optBoolArg(in, "isGross"); v != nil {
		isGross = *v
	}
	i, err := r.Incomes.Create(p.Context, core.NewIncome{
		Name:       stringArg(in, "name"),
		Amount:     decimalArg(in, "amount"),
		IncomeType: incomeTypeArg(in, "incomeType"),
		IsActive:   isActive,
		StartDate:  optDateArg(in, "startDate"),
		Notes:      optStringArg(in, "notes"),
		Currency:   stringArg(in, "currency"),
		IsGross:    isGross,
		TaxRate:    optDecimalArg(in, "taxRate"),
		OtherFees:  optDecimalArg(in, "otherFees"),
	})
	if err != nil {
		return nil, err
	}
	return newIncomeModel(*i), nil
}

func incomeTypeArg(m map[string]any, key string) core.IncomeType {
	if v, ok := m[key].(core.IncomeType); ok {
		return v
	}
	return ""
}

func (r *Resolver) resolveUpdateIncome(p graphql.ResolveParams) (any, error) {
	id := idArg(p.Args, "id")
	in := inputArg(p.Args, "input")
	i, err := r.Incomes.Update(p.Context, id, core.IncomePatch{
		Name:       optStringArg(in, "name"),
		Amount:     optDecimalArg(in, "amount"),
		IncomeType: optIncomeTypeArg(in, "incomeType"),
		IsActive:   optBoolArg(in, "isActive"),
		StartDate:  optDateArg(in, "startDate"),
		Notes:      optStringArg(in, "notes"),
		Currency:   optStringArg(in, "currency"),
		IsGross:    optBoolArg(in, "isGross"),
		TaxRate:    optDecimalArg(in, "taxRate"),
		OtherFees:  optDecimalArg(in, "otherFees"),
	})
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, fmt.Errorf("income with id %d not found", id)
	}
	return newIncomeModel(*i), nil
}

func (r *Resolver) resolveDeleteIncome(p graphql.ResolveParams) (any, error) {
	return r.Incomes.Delete(p.Context, idArg(p.Args, "id"))
}
