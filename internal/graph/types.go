package graph

import (
	"github.com/graphql-go/graphql"

	"mymoney/internal/core"
)

// Enums carry the core typed constants as their values, so parsed arguments
// arrive already typed and model fields serialize back without mapping.

var recurrenceRuleEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "RecurrenceRule",
	Values: graphql.EnumValueConfigMap{
		"DAILY":     {Value: core.RecurrenceDaily},
		"WEEKLY":    {Value: core.RecurrenceWeekly},
		"BIWEEKLY":  {Value: core.RecurrenceBiweekly},
		"MONTHLY":   {Value: core.RecurrenceMonthly},
		"QUARTERLY": {Value: core.RecurrenceQuarterly},
		"YEARLY":    {Value: core.RecurrenceYearly},
	},
})

var incomeTypeEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "IncomeType",
	Values: graphql.EnumValueConfigMap{
		"SALARY":      {Value: core.IncomeSalary},
		"FREELANCE":   {Value: core.IncomeFreelance},
		"INVESTMENTS": {Value: core.IncomeInvestments},
		"RENTAL":      {Value: core.IncomeRental},
		"BUSINESS":    {Value: core.IncomeBusiness},
		"OTHER":       {Value: core.IncomeOther},
	},
})

var assetTypeEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "AssetType",
	Values: graphql.EnumValueConfigMap{
		"STOCK":  {Value: core.AssetStock},
		"CRYPTO": {Value: core.AssetCrypto},
		"FUND":   {Value: core.AssetFund},
		"ETF":    {Value: core.AssetETF},
		"BOND":   {Value: core.AssetBond},
		"FII":    {Value: core.AssetFII},
		"OTHER":  {Value: core.AssetOther},
	},
})

var expenseSortFieldEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "ExpenseSortField",
	Values: graphql.EnumValueConfigMap{
		"DATE":   {Value: core.SortByDate},
		"AMOUNT": {Value: core.SortByAmount},
	},
})

var sortDirectionEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "SortDirection",
	Values: graphql.EnumValueConfigMap{
		"ASC":  {Value: core.SortAsc},
		"DESC": {Value: core.SortDesc},
	},
})

var categoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Category",
	Fields: graphql.Fields{
		"id":        {Type: graphql.NewNonNull(graphql.ID)},
		"name":      {Type: graphql.NewNonNull(graphql.String)},
		"color":     {Type: graphql.NewNonNull(graphql.String)},
		"icon":      {Type: graphql.String},
		"createdAt": {Type: graphql.NewNonNull(dateTimeType)},
	},
})

var expenseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Expense",
	Fields: graphql.Fields{
		"id":             {Type: graphql.NewNonNull(graphql.ID)},
		"amount":         {Type: graphql.NewNonNull(decimalType)},
		"description":    {Type: graphql.NewNonNull(graphql.String)},
		"notes":          {Type: graphql.String},
		"date":           {Type: graphql.NewNonNull(dateType)},
		"categoryId":     {Type: graphql.NewNonNull(graphql.ID)},
		"category":       {Type: categoryType},
		"isRecurring":    {Type: graphql.NewNonNull(graphql.Boolean)},
		"recurrenceRule": {Type: recurrenceRuleEnum},
		"isPaid":         {Type: graphql.NewNonNull(graphql.Boolean)},
		"paidAt":         {Type: dateTimeType},
		"createdAt":      {Type: graphql.NewNonNull(dateTimeType)},
		"updatedAt":      {Type: graphql.NewNonNull(dateTimeType)},
	},
})

var expensePageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ExpensePage",
	Fields: graphql.Fields{
		"items":      {Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(expenseType)))},
		"totalCount": {Type: graphql.NewNonNull(graphql.Int)},
		"hasMore":    {Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var expenseSummaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ExpenseSummary",
	Fields: graphql.Fields{
		"totalAmount":  {Type: graphql.NewNonNull(decimalType)},
		"paidAmount":   {Type: graphql.NewNonNull(decimalType)},
		"unpaidAmount": {Type: graphql.NewNonNull(decimalType)},
		"totalCount":   {Type: graphql.NewNonNull(graphql.Int)},
		"paidCount":    {Type: graphql.NewNonNull(graphql.Int)},
		"unpaidCount":  {Type: graphql.NewNonNull(graphql.Int)},
	},
})

var incomeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Income",
	Fields: graphql.Fields{
		"id":         {Type: graphql.NewNonNull(graphql.ID)},
		"name":       {Type: graphql.NewNonNull(graphql.String)},
		"amount":     {Type: graphql.NewNonNull(decimalType)},
		"netAmount":  {Type: graphql.NewNonNull(decimalType)},
		"incomeType": {Type: graphql.NewNonNull(incomeTypeEnum)},
		"isActive":   {Type: graphql.NewNonNull(graphql.Boolean)},
		"startDate":  {Type: dateType},
		"notes":      {Type: graphql.String},
		"currency":   {Type: graphql.NewNonNull(graphql.String)},
		"isGross":    {Type: graphql.NewNonNull(graphql.Boolean)},
		"taxRate":    {Type: decimalType},
		"otherFees":  {Type: decimalType},
		"createdAt":  {Type: graphql.NewNonNull(dateTimeType)},
		"updatedAt":  {Type: graphql.NewNonNull(dateTimeType)},
	},
})

var incomePageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "IncomePage",
	Fields: graphql.Fields{
		"items":      {Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(incomeType)))},
		"totalCount": {Type: graphql.NewNonNull(graphql.Int)},
		"hasMore":    {Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var assetType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Asset",
	Fields: graphql.Fields{
		"id":              {Type: graphql.NewNonNull(graphql.ID)},
		"portfolioId":     {Type: graphql.NewNonNull(graphql.ID)},
		"symbol":          {Type: graphql.NewNonNull(graphql.String)},
		"name":            {Type: graphql.NewNonNull(graphql.String)},
		"assetType":       {Type: graphql.NewNonNull(assetTypeEnum)},
		"quantity":        {Type: graphql.NewNonNull(decimalType)},
		"purchasePrice":   {Type: graphql.NewNonNull(decimalType)},
		"purchaseDate":    {Type: graphql.NewNonNull(dateType)},
		"currentPrice":    {Type: decimalType},
		"currency":        {Type: graphql.NewNonNull(graphql.String)},
		"notes":           {Type: graphql.String},
		"totalCost":       {Type: graphql.NewNonNull(decimalType)},
		"currentValue":    {Type: decimalType},
		"gainLoss":        {Type: decimalType},
		"gainLossPercent": {Type: decimalType},
		"createdAt":       {Type: graphql.NewNonNull(dateTimeType)},
		"updatedAt":       {Type: graphql.NewNonNull(dateTimeType)},
	},
})

var portfolioType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Portfolio",
	Fields: graphql.Fields{
		"id":                   {Type: graphql.NewNonNull(graphql.ID)},
		"name":                 {Type: graphql.NewNonNull(graphql.String)},
		"description":          {Type: graphql.String},
		"assets":               {Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(assetType)))},
		"totalValue":           {Type: graphql.NewNonNull(decimalType)},
		"totalCost":            {Type: graphql.NewNonNull(decimalType)},
		"totalGainLoss":        {Type: graphql.NewNonNull(decimalType)},
		"totalGainLossPercent": {Type: graphql.NewNonNull(decimalType)},
		"createdAt":            {Type: graphql.NewNonNull(dateTimeType)},
		"updatedAt":            {Type: graphql.NewNonNull(dateTimeType)},
	},
})

var settingsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserSettings",
	Fields: graphql.Fields{
		"id":           {Type: graphql.NewNonNull(graphql.ID)},
		"mainCurrency": {Type: graphql.NewNonNull(graphql.String)},
		"language":     {Type: graphql.NewNonNull(graphql.String)},
		"createdAt":    {Type: graphql.NewNonNull(dateTimeType)},
		"updatedAt":    {Type: graphql.NewNonNull(dateTimeType)},
	},
})

var currencyType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Currency",
	Fields: graphql.Fields{
		"code":   {Type: graphql.NewNonNull(graphql.String)},
		"name":   {Type: graphql.NewNonNull(graphql.String)},
		"symbol": {Type: graphql.NewNonNull(graphql.String)},
	},
})

var languageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Language",
	Fields: graphql.Fields{
		"code":       {Type: graphql.NewNonNull(graphql.String)},
		"name":       {Type: graphql.NewNonNull(graphql.String)},
		"nativeName": {Type: graphql.NewNonNull(graphql.String)},
	},
})

var categorySummaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CategorySummary",
	Fields: graphql.Fields{
		"category":         {Type: graphql.NewNonNull(categoryType)},
		"totalAmount":      {Type: graphql.NewNonNull(decimalType)},
		"percentage":       {Type: graphql.NewNonNull(decimalType)},
		"transactionCount": {Type: graphql.NewNonNull(graphql.Int)},
	},
})

var allocationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AssetAllocation",
	Fields: graphql.Fields{
		"assetType":  {Type: graphql.NewNonNull(assetTypeEnum)},
		"totalValue": {Type: graphql.NewNonNull(decimalType)},
		"percentage": {Type: graphql.NewNonNull(decimalType)},
	},
})

var monthlyExpenseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MonthlyExpense",
	Fields: graphql.Fields{
		"month":       {Type: graphql.NewNonNull(graphql.String)},
		"totalAmount": {Type: graphql.NewNonNull(decimalType)},
	},
})

var dashboardType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DashboardSummary",
	Fields: graphql.Fields{
		"totalExpensesThisMonth": {Type: graphql.NewNonNull(decimalType)},
		"totalExpensesLastMonth": {Type: graphql.NewNonNull(decimalType)},
		"expenseChangePercent":   {Type: decimalType},
		"totalPortfolioValue":    {Type: graphql.NewNonNull(decimalType)},
		"totalPortfolioCost":     {Type: graphql.NewNonNull(decimalType)},
		"netWorth":               {Type: graphql.NewNonNull(decimalType)},
		"totalMonthlyIncome":     {Type: graphql.NewNonNull(decimalType)},
		"incomeStreamsCount":     {Type: graphql.NewNonNull(graphql.Int)},
		"topCategories":          {Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(categorySummaryType)))},
		"recentExpenses":         {Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(expenseType)))},
		"portfolioAllocation":    {Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(allocationType)))},
		"monthlyExpenseTrend":    {Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(monthlyExpenseType)))},
	},
})

// Input objects.

var expenseFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ExpenseFilter",
	Fields: graphql.InputObjectConfigFieldMap{
		"categoryId":  {Type: graphql.ID},
		"startDate":   {Type: dateType},
		"endDate":     {Type: dateType},
		"minAmount":   {Type: decimalType},
		"maxAmount":   {Type: decimalType},
		"isRecurring": {Type: graphql.Boolean},
		"isPaid":      {Type: graphql.Boolean},
		"search":      {Type: graphql.String},
	},
})

var createExpenseInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateExpenseInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"amount":         {Type: graphql.NewNonNull(decimalType)},
		"description":    {Type: graphql.NewNonNull(graphql.String)},
		"notes":          {Type: graphql.String},
		"date":           {Type: graphql.NewNonNull(dateType)},
		"categoryId":     {Type: graphql.NewNonNull(graphql.ID)},
		"isRecurring":    {Type: graphql.Boolean},
		"recurrenceRule": {Type: recurrenceRuleEnum},
	},
})

var updateExpenseInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateExpenseInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"amount":         {Type: decimalType},
		"description":    {Type: graphql.String},
		"notes":          {Type: graphql.String},
		"date":           {Type: dateType},
		"categoryId":     {Type: graphql.ID},
		"isRecurring":    {Type: graphql.Boolean},
		"recurrenceRule": {Type: recurrenceRuleEnum},
	},
})

var createIncomeInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateIncomeInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":       {Type: graphql.NewNonNull(graphql.String)},
		"amount":     {Type: graphql.NewNonNull(decimalType)},
		"incomeType": {Type: graphql.NewNonNull(incomeTypeEnum)},
		"isActive":   {Type: graphql.Boolean},
		"startDate":  {Type: dateType},
		"notes":      {Type: graphql.String},
		"currency":   {Type: graphql.String},
		"isGross":    {Type: graphql.Boolean},
		"taxRate":    {Type: decimalType},
		"otherFees":  {Type: decimalType},
	},
})

var updateIncomeInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateIncomeInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":       {Type: graphql.String},
		"amount":     {Type: decimalType},
		"incomeType": {Type: incomeTypeEnum},
		"isActive":   {Type: graphql.Boolean},
		"startDate":  {Type: dateType},
		"notes":      {Type: graphql.String},
		"currency":   {Type: graphql.String},
		"isGross":    {Type: graphql.Boolean},
		"taxRate":    {Type: decimalType},
		"otherFees":  {Type: decimalType},
	},
})

var createPortfolioInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreatePortfolioInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        {Type: graphql.NewNonNull(graphql.String)},
		"description": {Type: graphql.String},
	},
})

var updatePortfolioInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdatePortfolioInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        {Type: graphql.String},
		"description": {Type: graphql.String},
	},
})

var createAssetInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateAssetInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"portfolioId":   {Type: graphql.NewNonNull(graphql.ID)},
		"symbol":        {Type: graphql.NewNonNull(graphql.String)},
		"name":          {Type: graphql.NewNonNull(graphql.String)},
		"assetType":     {Type: graphql.NewNonNull(assetTypeEnum)},
		"quantity":      {Type: graphql.NewNonNull(decimalType)},
		"purchasePrice": {Type: graphql.NewNonNull(decimalType)},
		"purchaseDate":  {Type: graphql.NewNonNull(dateType)},
		"currentPrice":  {Type: decimalType},
		"currency":      {Type: graphql.String},
		"notes":         {Type: graphql.String},
	},
})

var updateAssetInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateAssetInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"symbol":        {Type: graphql.String},
		"name":          {Type: graphql.String},
		"assetType":     {Type: assetTypeEnum},
		"quantity":      {Type: decimalType},
		"purchasePrice": {Type: decimalType},
		"purchaseDate":  {Type: dateType},
		"currentPrice":  {Type: decimalType},
		"currency":      {Type: graphql.String},
		"notes":         {Type: graphql.String},
	},
})

var updateSettingsInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateSettingsInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"mainCurrency": {Type: graphql.String},
		"language":     {Type: graphql.String},
	},
})

var createCategoryInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateCategoryInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  {Type: graphql.NewNonNull(graphql.String)},
		"color": {Type: graphql.String},
		"icon":  {Type: graphql.String},
	},
})

var updateCategoryInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateCategoryInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  {Type: graphql.String},
		"color": {Type: graphql.String},
		"icon":  {Type: graphql.String},
	},
})
