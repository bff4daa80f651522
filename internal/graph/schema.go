package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable schema against the given resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": {
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return "ok", nil
				},
			},
			"categories": {
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(categoryType))),
				Resolve: r.resolveCategories,
			},
			"category": {
				Type: categoryType,
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveCategory,
			},
			"expenses": {
				Type: graphql.NewNonNull(expensePageType),
				Args: graphql.FieldConfigArgument{
					"filter":        {Type: expenseFilterInput},
					"sortBy":        {Type: expenseSortFieldEnum},
					"sortDirection": {Type: sortDirectionEnum},
					"limit":         {Type: graphql.Int},
					"offset":        {Type: graphql.Int},
				},
				Resolve: r.resolveExpenses,
			},
			"expense": {
				Type: expenseType,
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveExpense,
			},
			"expenseSummary": {
				Type: graphql.NewNonNull(expenseSummaryType),
				Args: graphql.FieldConfigArgument{
					"month": {Type: graphql.Int},
					"year":  {Type: graphql.Int},
				},
				Resolve: r.resolveExpenseSummary,
			},
			"incomes": {
				Type: graphql.NewNonNull(incomePageType),
				Args: graphql.FieldConfigArgument{
					"isActive": {Type: graphql.Boolean},
					"limit":    {Type: graphql.Int},
					"offset":   {Type: graphql.Int},
				},
				Resolve: r.resolveIncomes,
			},
			"income": {
				Type: incomeType,
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveIncome,
			},
			"portfolios": {
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(portfolioType))),
				Resolve: r.resolvePortfolios,
			},
			"portfolio": {
				Type: portfolioType,
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolvePortfolio,
			},
			"asset": {
				Type: assetType,
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveAsset,
			},
			"dashboard": {
				Type: graphql.NewNonNull(dashboardType),
				Args: graphql.FieldConfigArgument{
					"month": {Type: graphql.String},
				},
				Resolve: r.resolveDashboard,
			},
			"settings": {
				Type:    graphql.NewNonNull(settingsType),
				Resolve: r.resolveSettings,
			},
			"supportedCurrencies": {
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(currencyType))),
				Resolve: r.resolveSupportedCurrencies,
			},
			"supportedLanguages": {
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(languageType))),
				Resolve: r.resolveSupportedLanguages,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCategory": {
				Type: graphql.NewNonNull(categoryType),
				Args: graphql.FieldConfigArgument{
					"input": {Type: graphql.NewNonNull(createCategoryInput)},
				},
				Resolve: r.resolveCreateCategory,
			},
			"updateCategory": {
				Type: graphql.NewNonNull(categoryType),
				Args: graphql.FieldConfigArgument{
					"id":    {Type: graphql.NewNonNull(graphql.ID)},
					"input": {Type: graphql.NewNonNull(updateCategoryInput)},
				},
				Resolve: r.resolveUpdateCategory,
			},
			"deleteCategory": {
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveDeleteCategory,
			},
			"createExpense": {
				Type: graphql.NewNonNull(expenseType),
				Args: graphql.FieldConfigArgument{
					"input": {Type: graphql.NewNonNull(createExpenseInput)},
				},
				Resolve: r.resolveCreateExpense,
			},
			"updateExpense": {
				Type: graphql.NewNonNull(expenseType),
				Args: graphql.FieldConfigArgument{
					"id":    {Type: graphql.NewNonNull(graphql.ID)},
					"input": {Type: graphql.NewNonNull(updateExpenseInput)},
				},
				Resolve: r.resolveUpdateExpense,
			},
			"deleteExpense": {
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveDeleteExpense,
			},
			"markExpensePaid": {
				Type: graphql.NewNonNull(expenseType),
				Args: graphql.FieldConfigArgument{
					"id":   {Type: graphql.NewNonNull(graphql.ID)},
					"paid": {Type: graphql.NewNonNull(graphql.Boolean)},
				},
				Resolve: r.resolveMarkExpensePaid,
			},
			"createIncome": {
				Type: graphql.NewNonNull(incomeType),
				Args: graphql.FieldConfigArgument{
					"input": {Type: graphql.NewNonNull(createIncomeInput)},
				},
				Resolve: r.resolveCreateIncome,
			},
			"updateIncome": {
				Type: graphql.NewNonNull(incomeType),
				Args: graphql.FieldConfigArgument{
					"id":    {Type: graphql.NewNonNull(graphql.ID)},
					"input": {Type: graphql.NewNonNull(updateIncomeInput)},
				},
				Resolve: r.resolveUpdateIncome,
			},
			"deleteIncome": {
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveDeleteIncome,
			},
			"createPortfolio": {
				Type: graphql.NewNonNull(portfolioType),
				Args: graphql.FieldConfigArgument{
					"input": {Type: graphql.NewNonNull(createPortfolioInput)},
				},
				Resolve: r.resolveCreatePortfolio,
			},
			"updatePortfolio": {
				Type: graphql.NewNonNull(portfolioType),
				Args: graphql.FieldConfigArgument{
					"id":    {Type: graphql.NewNonNull(graphql.ID)},
					"input": {Type: graphql.NewNonNull(updatePortfolioInput)},
				},
				Resolve: r.resolveUpdatePortfolio,
			},
			"deletePortfolio": {
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveDeletePortfolio,
			},
			"createAsset": {
				Type: graphql.NewNonNull(assetType),
				Args: graphql.FieldConfigArgument{
					"input": {Type: graphql.NewNonNull(createAssetInput)},
				},
				Resolve: r.resolveCreateAsset,
			},
			"updateAsset": {
				Type: graphql.NewNonNull(assetType),
				Args: graphql.FieldConfigArgument{
					"id":    {Type: graphql.NewNonNull(graphql.ID)},
					"input": {Type: graphql.NewNonNull(updateAssetInput)},
				},
				Resolve: r.resolveUpdateAsset,
			},
			"deleteAsset": {
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": {Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveDeleteAsset,
			},
			"updateAssetPrice": {
				Type: graphql.NewNonNull(assetType),
				Args: graphql.FieldConfigArgument{
					"id":           {Type: graphql.NewNonNull(graphql.ID)},
					"currentPrice": {Type: graphql.NewNonNull(decimalType)},
				},
				Resolve: r.resolveUpdateAssetPrice,
			},
			"updateSettings": {
				Type: graphql.NewNonNull(settingsType),
				Args: graphql.FieldConfigArgument{
					"input": {Type: graphql.NewNonNull(updateSettingsInput)},
				},
				Resolve: r.resolveUpdateSettings,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
